package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"tunebite/audio"
	"tunebite/config"
	"tunebite/game/entity"
	"tunebite/game/types"
)

func TestApplyActions(t *testing.T) {
	g, err := newGame(config.Default(), rand.New(rand.NewSource(1)), audio.Nop{}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	quit, err := applyActions(g, []types.Action{types.ActionStart, types.ActionUp})
	if err != nil || quit {
		t.Fatalf("applyActions = %v, %v", quit, err)
	}
	if g.State() != types.Running {
		t.Errorf("state = %v, want RUNNING", g.State())
	}

	quit, err = applyActions(g, []types.Action{types.ActionQuit, types.ActionLeft})
	if err != nil || !quit {
		t.Errorf("applyActions = %v, %v, want quit", quit, err)
	}
}

func TestEndSession(t *testing.T) {
	full := fmt.Errorf("respawn food: %w", entity.ErrNoFreeCell)
	if err := endSession(full, zerolog.Nop()); err != nil {
		t.Errorf("full board should end cleanly, got %v", err)
	}

	other := errors.New("boom")
	if err := endSession(other, zerolog.Nop()); err != other {
		t.Errorf("endSession = %v, want %v", err, other)
	}
}

func TestSameSeedSameGame(t *testing.T) {
	run := func() []types.Point {
		g, err := newGame(config.Default(), rand.New(rand.NewSource(99)), audio.Nop{}, zerolog.Nop())
		if err != nil {
			t.Fatal(err)
		}
		if err := g.Start(); err != nil {
			t.Fatal(err)
		}
		foods := []types.Point{g.View().Food}
		for i := 0; i < 40; i++ {
			if i == 5 {
				g.HandleAction(types.ActionDown)
			}
			if i == 12 {
				g.HandleAction(types.ActionLeft)
			}
			if err := g.Update(); err != nil {
				t.Fatal(err)
			}
			v := g.View()
			foods = append(foods, v.Food, v.Body[0])
		}
		return foods
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "chatty"
	if _, _, err := newLogger(cfg); err == nil {
		t.Error("expected error for unknown level")
	}
}
