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

// Edge represents a single counter relation: the move with index Winner
// defeats the move with index Loser.
type Edge struct {
	Winner, Loser int
}

// NamedEdge pairs a counter Edge with the configured names of its moves.
type NamedEdge struct {
	Edge          Edge
	Winner, Loser string
}

// Edges enumerates every counter edge of a game of the given size, in
// row-major order over the ordered move pairs. Exactly one direction of
// each unordered pair resolves to an edge, so the result always has
// size*(size-1)/2 entries. The enumeration is deterministic.
func Edges(size int) []Edge {
	edges := make([]Edge, 0, size*(size-1)/2)

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if i != j && resolve(i, j) == Result(i) {
				edges = append(edges, Edge{Winner: i, Loser: j})
			}
		}
	}

	return edges
}
