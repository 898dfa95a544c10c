package cmd

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/grps/pkg/grps"
	"laptudirm.com/x/grps/pkg/library"
)

// IDENTIFIER:
// (1) bundled-preset-name
// (2) stored-game-name
// (3) game-size (unnamed game, moves are indices)

// loadGame resolves a game identifier into a playable Game. Bundled
// presets shadow stored games of the same name.
func loadGame(identifier string) (*grps.Game, error) {
	if preset, found := grps.Presets[identifier]; found {
		logrus.WithField("game", identifier).Debug("Loaded bundled game")
		return preset(), nil
	}

	if size, err := strconv.Atoi(identifier); err == nil {
		return grps.New(size)
	}

	return library.Default().Load(identifier)
}
