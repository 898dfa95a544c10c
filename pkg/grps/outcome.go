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

// Package grps implements a generalized rock-paper-scissors game over any
// odd number of moves N >= 3. The counter relation between the N moves is
// derived from a single parity rule which guarantees that every move
// counters exactly (N-1)/2 others and is countered by the same number, and
// that the counter graph of a game of size N is contained in the graph of
// size N+2.
//
// Source: https://math.stackexchange.com/questions/3229686/generalizing-rock-paper-scissors-game
package grps

import "fmt"

// Result represents the result of resolving two moves against each other.
// It is either the index of the winning move or the Tie sentinel.
type Result int

// Tie is returned when both moves are identical.
const Tie Result = -1

// IsTie reports whether the Result represents a tied match.
func (result Result) IsTie() bool {
	return result == Tie
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	if result.IsTie() {
		return "tie"
	}

	return fmt.Sprintf("move %d wins", int(result))
}

// Resolve returns the Result of playing the two given move indices against
// each other in a game of the given size. Identical moves tie, moves of
// equal parity resolve to the larger index, and moves of opposite parity
// resolve to the smaller one. The winner is independent of argument order.
func Resolve(n0, n1, size int) (Result, error) {
	if n0 < 0 || n0 >= size {
		return Tie, fmt.Errorf("%w: move %d in game of size %d", ErrRange, n0, size)
	}

	if n1 < 0 || n1 >= size {
		return Tie, fmt.Errorf("%w: move %d in game of size %d", ErrRange, n1, size)
	}

	return resolve(n0, n1), nil
}

// resolve implements the parity rule for in-range indices. The rule itself
// does not depend on the game's size.
func resolve(n0, n1 int) Result {
	switch {
	case n0 == n1:
		return Tie

	case n0%2 == n1%2:
		if n0 > n1 {
			return Result(n0)
		}
		return Result(n1)

	default:
		if n0 < n1 {
			return Result(n0)
		}
		return Result(n1)
	}
}
