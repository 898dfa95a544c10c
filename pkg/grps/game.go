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

import (
	"fmt"
	"math/rand"
)

// Game represents a single generalized rock-paper-scissors configuration:
// a fixed odd size plus optional move names and per-edge narrative verbs.
// Names and verbs are only ever replaced wholesale, and each replacement
// is validated in full before it is committed.
//
// A Game defines no locking of its own: concurrent hosts must synchronize
// access to the setters externally.
type Game struct {
	size int

	names []string
	verbs map[Edge]string

	// draw samples the opponent's move for single-move plays. Kept as a
	// field so tests can pin the opponent's choice.
	draw func(size int) int
}

// New creates an empty Game of the given size. The size must be an odd
// number no smaller than 3; anything else is rejected with ErrRange.
func New(size int) (*Game, error) {
	if size < 3 {
		return nil, fmt.Errorf("%w: game size %d, want at least 3", ErrRange, size)
	}

	if size%2 == 0 {
		return nil, fmt.Errorf("%w: game size %d, want an odd number", ErrRange, size)
	}

	return &Game{size: size, draw: rand.Intn}, nil
}

// Size returns the number of moves in the Game.
func (game *Game) Size() int {
	return game.size
}

// EdgeCount returns the number of counter edges in the Game's graph,
// which is always size*(size-1)/2.
func (game *Game) EdgeCount() int {
	return game.size * (game.size - 1) / 2
}

// Edges enumerates the Game's counter edges. See Edges.
func (game *Game) Edges() []Edge {
	return Edges(game.size)
}

// Names returns the configured move names, or nil if they are unset.
func (game *Game) Names() []string {
	return game.names
}

// Verbs returns the configured narrative verbs, or nil if they are unset.
func (game *Game) Verbs() map[Edge]string {
	return game.verbs
}

// SetNames replaces the Game's move names. Exactly one distinct name is
// required per move, index-aligned; otherwise the assignment fails with
// ErrValidation and the previously configured names are kept.
func (game *Game) SetNames(names ...string) error {
	if len(names) != game.size {
		return fmt.Errorf("%w: %d names for a game of size %d", ErrValidation, len(names), game.size)
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return fmt.Errorf("%w: duplicate name %q", ErrValidation, name)
		}
		seen[name] = true
	}

	game.names = append([]string(nil), names...)
	return nil
}

// SetVerbs replaces the Game's narrative verbs. The map must have exactly
// one entry per counter edge; otherwise the assignment fails with
// ErrValidation and the previously configured verbs are kept.
//
// Only the entry count is validated, not that the key set matches the
// enumerated edges: a map of the right size with mismatched keys passes
// and surfaces later as missing verbs during narration.
func (game *Game) SetVerbs(verbs map[Edge]string) error {
	if len(verbs) != game.EdgeCount() {
		return fmt.Errorf("%w: %d verbs for a game with %d edges", ErrValidation, len(verbs), game.EdgeCount())
	}

	copied := make(map[Edge]string, len(verbs))
	for edge, verb := range verbs {
		copied[edge] = verb
	}

	game.verbs = copied
	return nil
}

// NamedEdges enumerates the Game's counter edges together with the names
// of each edge's winning and losing moves. It fails with ErrState until
// names have been configured.
func (game *Game) NamedEdges() ([]NamedEdge, error) {
	if game.names == nil {
		return nil, fmt.Errorf("%w: names are unset", ErrState)
	}

	edges := game.Edges()
	named := make([]NamedEdge, len(edges))
	for i, edge := range edges {
		named[i] = NamedEdge{
			Edge:   edge,
			Winner: game.names[edge.Winner],
			Loser:  game.names[edge.Loser],
		}
	}

	return named, nil
}

// index resolves a move name to its index in the configured names.
func (game *Game) index(name string) (int, error) {
	for i, known := range game.names {
		if known == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrLookup, name)
}
