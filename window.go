package main

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"tunebite/audio"
	"tunebite/config"
	"tunebite/game"
	"tunebite/ui"
)

type windowPlayer interface {
	game.Audio
	Update()
	Close()
}

func runWindow(cfg config.Config, rng *rand.Rand, logger zerolog.Logger) error {
	w, h := cfg.WindowSize()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(w), int32(h), cfg.Title)
	defer rl.CloseWindow()

	// Escape is mapped to quit like any other key
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(cfg.FPS))

	renderer, err := ui.NewRenderer(cfg)
	if err != nil {
		return fmt.Errorf("load sprites: %w", err)
	}
	defer renderer.Close()

	var player windowPlayer = audio.Nop{}
	if !cfg.Mute {
		p, err := audio.NewRaylibPlayer(cfg, logger)
		if err != nil {
			return fmt.Errorf("load audio: %w", err)
		}
		player = p
	}
	defer player.Close()

	g, err := newGame(cfg, rng, player, logger)
	if err != nil {
		return err
	}

	lastUpdate := time.Now()
	for !rl.WindowShouldClose() {
		quit, err := applyActions(g, ui.RaylibActions())
		if err != nil {
			return endSession(err, logger)
		}
		if quit {
			return nil
		}

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= cfg.TickInterval {
			if err := g.Update(); err != nil {
				return endSession(err, logger)
			}
			lastUpdate = time.Now()
		}

		player.Update()
		renderer.Draw(g.View())
	}
	return nil
}
