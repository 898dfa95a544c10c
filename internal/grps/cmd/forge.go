package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/grps/pkg/grps"
	"laptudirm.com/x/grps/pkg/library"
)

// grps forge
func Forge() *cobra.Command {
	return &cobra.Command{
		Use:   "forge name size",
		Short: "Forge a new game interactively and store it",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Doc(`forge creates a brand new game of the given size, prompting
			for the name of every move and then for the verb of every
			counter edge, the narrative of how the winning move defeats
			the losing one ('cuts' for scissors -> paper).

			The finished game is stored in your library under the given
			name and can then be used with the other grps commands.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("size %s is not a number", args[1])
			}

			game, err := grps.New(size)
			if err != nil {
				return err
			}

			reader := bufio.NewReader(cmd.InOrStdin())
			prompt := func(format string, a ...any) (string, error) {
				fmt.Printf(format, a...)
				line, err := reader.ReadString('\n')
				if err != nil {
					return "", err
				}

				return strings.TrimSpace(line), nil
			}

			names := make([]string, size)
			for i := range names {
				if names[i], err = prompt("enter the name of move %d: ", i); err != nil {
					return err
				}
			}

			if err := game.SetNames(names...); err != nil {
				return err
			}

			err = game.BuildVerbs(func(number int, edge grps.Edge, winner, loser string) (string, error) {
				fmt.Printf("edge #%d/%d: %d -> %d, %s vs. %s\n",
					number, game.EdgeCount(), edge.Winner, edge.Loser, winner, loser)
				return prompt("enter the verb for %s -> %s: ", winner, loser)
			})
			if err != nil {
				return err
			}

			if err := library.Default().Save(args[0], game); err != nil {
				return err
			}

			fmt.Printf("\n\x1b[32mYour game is now complete.\x1b[0m Try it with: grps play %s %s\n", args[0], names[0])
			return nil
		},
	}
}
