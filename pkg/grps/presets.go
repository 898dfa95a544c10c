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

// Presets maps the names of the games bundled with this package to their
// constructors.
var Presets = map[string]func() *Game{
	"classic":    Classic,
	"spock":      SpockVersion,
	"the-office": TheOfficeVersion,
}

// Classic returns the classic size-3 game of rock, paper, scissors.
func Classic() *Game {
	return preset(
		[]string{"scissors", "paper", "rock"},
		map[Edge]string{
			{0, 1}: "cuts",
			{1, 2}: "wraps",
			{2, 0}: "smashes",
		},
	)
}

// SpockVersion returns the extended size-5 game of rock, paper, scissors,
// lizard, spock.
func SpockVersion() *Game {
	return preset(
		[]string{"scissors", "paper", "rock", "lizard", "spock"},
		map[Edge]string{
			{0, 1}: "cuts",
			{0, 3}: "cuts",
			{1, 2}: "wraps",
			{1, 4}: "proves",
			{2, 0}: "smashes",
			{2, 3}: "smashes",
			{3, 1}: "eats",
			{3, 4}: "poisons",
			{4, 0}: "breaks",
			{4, 2}: "vaporizes",
		},
	)
}

// TheOfficeVersion returns a size-7 game between the characters of a
// certain mockumentary sitcom.
func TheOfficeVersion() *Game {
	return preset(
		[]string{"Jim", "Dwight", "Michael", "Pam", "Kevin", "Andy", "Angela"},
		map[Edge]string{
			{0, 1}: "fools",
			{0, 3}: "marries",
			{0, 5}: "triggers",
			{1, 2}: "annoys",
			{1, 4}: "insults",
			{1, 6}: "courts",
			{2, 0}: "ruins sale for",
			{2, 3}: "sexually harasses",
			{2, 5}: "ignores",
			{3, 1}: "becomes friends with",
			{3, 4}: "is disgusted by",
			{3, 6}: "retaliates",
			{4, 0}: "annoys",
			{4, 2}: "wants cake from",
			{4, 5}: "teams up with",
			{5, 1}: "steals Angels from",
			{5, 3}: "snobs",
			{5, 6}: "sings to",
			{6, 0}: "insults",
			{6, 2}: "is mad at",
			{6, 4}: "is disgusted by",
		},
	)
}

// preset assembles a bundled Game. The definitions above are statically
// valid, so the configuration errors are unreachable.
func preset(names []string, verbs map[Edge]string) *Game {
	game, err := New(len(names))
	if err != nil {
		panic(err)
	}

	if err := game.SetNames(names...); err != nil {
		panic(err)
	}

	if err := game.SetVerbs(verbs); err != nil {
		panic(err)
	}

	return game
}
