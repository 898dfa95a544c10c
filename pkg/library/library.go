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

// Package library stores game definitions as yaml files so that forged
// games can be played again across invocations.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"laptudirm.com/x/grps/pkg/grps"
)

// Record is the on-disk representation of a game definition.
type Record struct {
	Size  int          `yaml:"size"`
	Names []string     `yaml:"names,omitempty"`
	Verbs []VerbRecord `yaml:"verbs,omitempty"`
}

// VerbRecord is the on-disk representation of a single edge verb.
type VerbRecord struct {
	Winner int    `yaml:"winner"`
	Loser  int    `yaml:"loser"`
	Verb   string `yaml:"verb"`
}

// Library is a directory of stored game definitions, one yaml file per
// game.
type Library struct {
	Directory string
}

// Default returns the Library rooted at the default game directory,
// creating the directory if necessary.
func Default() *Library {
	TryMkdir(Directory)
	return &Library{Directory: Directory}
}

// Path returns the path of the given game's definition file.
func (lib *Library) Path(name string) string {
	return filepath.Join(lib.Directory, name+".yaml")
}

// Save stores the given game's definition under the given name, replacing
// any previous definition with that name.
func (lib *Library) Save(name string, game *grps.Game) error {
	record := Record{
		Size:  game.Size(),
		Names: game.Names(),
	}

	// Dump the verbs in enumeration order to keep the file stable.
	verbs := game.Verbs()
	for _, edge := range game.Edges() {
		if verb, found := verbs[edge]; found {
			record.Verbs = append(record.Verbs, VerbRecord{
				Winner: edge.Winner,
				Loser:  edge.Loser,
				Verb:   verb,
			})
		}
	}

	file, err := yaml.Marshal(record)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"game": name,
		"path": lib.Path(name),
	}).Debug("Saving game definition")

	return os.WriteFile(lib.Path(name), file, FilePermissions)
}

// Load reassembles the game definition stored under the given name.
func (lib *Library) Load(name string) (*grps.Game, error) {
	file, err := os.ReadFile(lib.Path(name))
	if err != nil {
		return nil, fmt.Errorf("game %s not found in library", name)
	}

	var record Record
	if err := yaml.Unmarshal(file, &record); err != nil {
		return nil, err
	}

	game, err := grps.New(record.Size)
	if err != nil {
		return nil, err
	}

	if record.Names != nil {
		if err := game.SetNames(record.Names...); err != nil {
			return nil, err
		}
	}

	if record.Verbs != nil {
		verbs := make(map[grps.Edge]string, len(record.Verbs))
		for _, verb := range record.Verbs {
			verbs[grps.Edge{Winner: verb.Winner, Loser: verb.Loser}] = verb.Verb
		}

		if err := game.SetVerbs(verbs); err != nil {
			return nil, err
		}
	}

	return game, nil
}

// List returns the names of the stored game definitions in sorted order.
func (lib *Library) List() ([]string, error) {
	entries, err := os.ReadDir(lib.Directory)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if name, found := strings.CutSuffix(entry.Name(), ".yaml"); found && !entry.IsDir() {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

// Remove deletes the game definition stored under the given name.
func (lib *Library) Remove(name string) error {
	if err := os.Remove(lib.Path(name)); err != nil {
		return fmt.Errorf("game %s not found in library", name)
	}

	return nil
}
