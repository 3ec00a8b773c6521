package main

import (
	"errors"

	"github.com/rs/zerolog"

	"tunebite/game"
	"tunebite/game/entity"
	"tunebite/game/types"
)

// applyActions feeds input to the game in the order it was read.
// It stops at the first quit.
func applyActions(g *game.Game, actions []types.Action) (bool, error) {
	for _, a := range actions {
		quit, err := g.HandleAction(a)
		if err != nil || quit {
			return quit, err
		}
	}
	return false, nil
}

// endSession turns a full board into a normal exit; any other error is passed on
func endSession(err error, logger zerolog.Logger) error {
	if errors.Is(err, entity.ErrNoFreeCell) {
		logger.Warn().Err(err).Msg("Board is full, ending session")
		return nil
	}
	return err
}
