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

// Package export renders a game's counter graph in formats consumable by
// external visualization tools.
package export

import (
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"laptudirm.com/x/grps/pkg/grps"
)

// DOT writes the game's counter graph to the given writer in Graphviz DOT
// format. Moves become nodes labeled with their names and counter edges
// become directed edges, labeled with their verbs when verbs are set. It
// fails with grps.ErrState until the game's names are configured.
func DOT(game *grps.Game, w io.Writer) error {
	named, err := game.NamedEdges()
	if err != nil {
		return err
	}

	g := graph.New(graph.StringHash, graph.Directed())

	for _, name := range game.Names() {
		if err := g.AddVertex(name); err != nil {
			return err
		}
	}

	verbs := game.Verbs()
	for _, edge := range named {
		var options []func(*graph.EdgeProperties)
		if verb, found := verbs[edge.Edge]; found {
			options = append(options, graph.EdgeAttribute("label", verb))
		}

		if err := g.AddEdge(edge.Winner, edge.Loser, options...); err != nil {
			return err
		}
	}

	return draw.DOT(g, w)
}
