package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"tunebite/audio"
	"tunebite/config"
	"tunebite/game"
	"tunebite/game/types"
	"tunebite/ui"
)

type terminalPlayer interface {
	game.Audio
	Close()
}

func runTerminal(cfg config.Config, rng *rand.Rand, logger zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	var player terminalPlayer = audio.Nop{}
	if !cfg.Mute {
		p, err := audio.NewBeepPlayer(cfg, logger)
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
	renderer := ui.NewTerminalRenderer(screen, cfg)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	tick := time.NewTicker(cfg.TickInterval)
	defer tick.Stop()
	frame := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer frame.Stop()

	// Only this goroutine touches the game; input, ticks and frames are serialized by the select
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				quit, err := applyActions(g, []types.Action{ui.TerminalAction(ev)})
				if err != nil {
					return endSession(err, logger)
				}
				if quit {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-tick.C:
			if err := g.Update(); err != nil {
				return endSession(err, logger)
			}

		case <-frame.C:
			renderer.Draw(g.View())
		}
	}
}
