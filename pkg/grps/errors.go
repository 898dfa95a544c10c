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

import "errors"

// The sentinel errors returned by this package. Errors are wrapped with
// context at the site of the failure, so match them with errors.Is.
var (
	// ErrRange is returned when a move index or a game size lies outside
	// its valid domain.
	ErrRange = errors.New("value out of range")

	// ErrValidation is returned when a names or verbs assignment has the
	// wrong cardinality or contains duplicate names.
	ErrValidation = errors.New("invalid game configuration")

	// ErrState is returned when an operation requires names or verbs
	// which have not been configured yet.
	ErrState = errors.New("game configuration incomplete")

	// ErrLookup is returned when a move name is not one of the game's
	// configured names.
	ErrLookup = errors.New("unknown move name")
)
