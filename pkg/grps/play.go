// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package grps

import "fmt"

// MatchResult represents the outcome of a single resolved match.
type MatchResult struct {
	// Result is the index of the winning move, or Tie.
	Result Result

	// Moves holds the two compared move indices, player one first.
	Moves [2]int

	// Message is the rendered narrative of the match. It is only set by
	// the name-based entry points.
	Message string
}

// PlayIndexes plays the two given move indices against each other. Either
// index being out of the game's range fails with ErrRange.
func (game *Game) PlayIndexes(move, move2 int) (MatchResult, error) {
	if move < 0 || move >= game.size {
		return MatchResult{}, fmt.Errorf("%w: move %d in game of size %d", ErrRange, move, game.size)
	}

	if move2 < 0 || move2 >= game.size {
		return MatchResult{}, fmt.Errorf("%w: move %d in game of size %d", ErrRange, move2, game.size)
	}

	return MatchResult{
		Result: resolve(move, move2),
		Moves:  [2]int{move, move2},
	}, nil
}

// PlayIndex plays the given move index against an opponent move sampled
// uniformly at random. The sample may equal the player's move, in which
// case the match is a tie.
func (game *Game) PlayIndex(move int) (MatchResult, error) {
	if move < 0 || move >= game.size {
		return MatchResult{}, fmt.Errorf("%w: move %d in game of size %d", ErrRange, move, game.size)
	}

	return game.PlayIndexes(move, game.draw(game.size))
}

// PlayNames plays the two given move names against each other and renders
// a narrative of the match. It fails with ErrState until both names and
// verbs are configured, and with ErrLookup for an unknown name.
func (game *Game) PlayNames(move, move2 string) (MatchResult, error) {
	if err := game.narratable(); err != nil {
		return MatchResult{}, err
	}

	i, err := game.index(move)
	if err != nil {
		return MatchResult{}, err
	}

	i2, err := game.index(move2)
	if err != nil {
		return MatchResult{}, err
	}

	result, err := game.PlayIndexes(i, i2)
	if err != nil {
		return MatchResult{}, err
	}

	result.Message = game.narrate(result, false)
	return result, nil
}

// PlayName plays the given move name against a random opponent move and
// renders a narrative of the match. It fails with ErrState until both
// names and verbs are configured, and with ErrLookup for an unknown name.
func (game *Game) PlayName(move string) (MatchResult, error) {
	if err := game.narratable(); err != nil {
		return MatchResult{}, err
	}

	i, err := game.index(move)
	if err != nil {
		return MatchResult{}, err
	}

	result, err := game.PlayIndex(i)
	if err != nil {
		return MatchResult{}, err
	}

	result.Message = game.narrate(result, true)
	return result, nil
}

// narratable reports whether the Game is configured for name-based play.
func (game *Game) narratable() error {
	if game.names == nil {
		return fmt.Errorf("%w: names are unset", ErrState)
	}

	if game.verbs == nil {
		return fmt.Errorf("%w: verbs are unset", ErrState)
	}

	return nil
}

// narrate renders the human-readable outcome of a resolved match. sampled
// distinguishes a randomly drawn opponent from an explicit second player,
// which changes how the winner is addressed.
func (game *Game) narrate(result MatchResult, sampled bool) string {
	player, opponent := result.Moves[0], result.Moves[1]

	switch {
	case result.Result.IsTie():
		name := game.names[opponent]
		return fmt.Sprintf("%s vs. %s, tie!", name, name)

	case result.Result == Result(player):
		verb := game.verbs[Edge{Winner: player, Loser: opponent}]
		if sampled {
			return fmt.Sprintf("%s %s %s, you win!", game.names[player], verb, game.names[opponent])
		}
		return fmt.Sprintf("%s %s %s, player1 wins!", game.names[player], verb, game.names[opponent])

	default:
		verb := game.verbs[Edge{Winner: opponent, Loser: player}]
		if sampled {
			return fmt.Sprintf("%s %s %s, you lose!", game.names[opponent], verb, game.names[player])
		}
		return fmt.Sprintf("%s %s %s, player2 wins!", game.names[opponent], verb, game.names[player])
	}
}
