package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/grps/pkg/grps"
)

const SPIN = 31

// grps play
func Play() *cobra.Command {
	return &cobra.Command{
		Use:   "play game move [move2]",
		Short: "Play a single match in the given game",
		Args:  cobra.RangeArgs(2, 3),
		Long: heredoc.Doc(`play resolves a single match in the given game. The game may
			be one of the bundled presets, a game stored in your library,
			or an odd number for a bare game whose moves are the indices
			0 to size-1.

			With one move, the opponent's move is drawn at random and the
			draw may tie with yours. With two moves, they are played
			against each other as player1 and player2.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := loadGame(args[0])
			if err != nil {
				return err
			}

			// Unnamed games are played by move index and report the
			// winning index instead of a narrative.
			if game.Names() == nil {
				return playIndexes(game, args[1:])
			}

			var result grps.MatchResult
			if len(args) == 3 {
				result, err = game.PlayNames(args[1], args[2])
			} else {
				awaitDraw()
				result, err = game.PlayName(args[1])
			}

			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"moves":  result.Moves,
				"result": result.Result,
			}).Debug("Resolved match")

			fmt.Println(result.Message)
			return nil
		},
	}
}

// playIndexes plays a match in an unnamed game, with moves given as index
// strings.
func playIndexes(game *grps.Game, moves []string) error {
	move, err := strconv.Atoi(moves[0])
	if err != nil {
		return fmt.Errorf("move %s is not a move index", moves[0])
	}

	var result grps.MatchResult
	if len(moves) == 2 {
		move2, err := strconv.Atoi(moves[1])
		if err != nil {
			return fmt.Errorf("move %s is not a move index", moves[1])
		}

		result, err = game.PlayIndexes(move, move2)
		if err != nil {
			return err
		}
	} else {
		awaitDraw()

		if result, err = game.PlayIndex(move); err != nil {
			return err
		}
	}

	if result.Result.IsTie() {
		fmt.Printf("%d vs. %d, \x1b[33mtie!\x1b[0m\n", result.Moves[0], result.Moves[1])
	} else {
		fmt.Printf("%d vs. %d, \x1b[32mmove %d wins!\x1b[0m\n", result.Moves[0], result.Moves[1], int(result.Result))
	}

	return nil
}

// awaitDraw runs a short spinner while the opponent "thinks". Purely
// cosmetic: the draw itself is instant.
func awaitDraw() {
	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond)
	s.Suffix = " The opponent is choosing a move..."

	s.Start()
	time.Sleep(800 * time.Millisecond)
	s.Stop()
}
