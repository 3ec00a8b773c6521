// Package config holds the startup configuration shared by the game and the frontends.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"tunebite/game/types"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Asset maps an id used by the game to a file under the asset root
type Asset struct {
	ID   string
	Path string
}

// Color is an RGB colour
type Color struct {
	R, G, B uint8
}

// Config is built once at startup and passed by value; nothing mutates it afterwards
type Config struct {
	Title string

	Cells    int
	CellSize int
	// Offset is the margin around the grid in pixels
	Offset int

	TickInterval time.Duration
	FPS          int
	// Seed 0 means seed from the clock
	Seed uint64

	Frontend string
	Mute     bool

	AssetDir string
	Tracks   []Asset
	Sounds   []Asset
	Sprites  []Asset

	Background Color
	Foreground Color

	LogLevel string
	LogFile  string
}

func Default() Config {
	return Config{
		Title:        "TuneBite",
		Cells:        types.GridCells,
		CellSize:     25,
		Offset:       75,
		TickInterval: 200 * time.Millisecond,
		FPS:          60,
		Frontend:     FrontendWindow,
		AssetDir:     "assets",
		Tracks: []Asset{
			{ID: "bg1", Path: "Sounds/bg1.mp3"},
			{ID: "bg2", Path: "Sounds/bg2.mp3"},
			{ID: "bg3", Path: "Sounds/bg3.mp3"},
		},
		Sounds: []Asset{
			{ID: "eat", Path: "Sounds/eat.mp3"},
			{ID: "hit", Path: "Sounds/wall.mp3"},
		},
		Sprites: []Asset{
			{ID: "food", Path: "Graphics/food.png"},
			{ID: "special_food", Path: "Graphics/special_food.png"},
		},
		Background: Color{R: 173, G: 205, B: 96},
		Foreground: Color{R: 43, G: 51, B: 24},
		LogLevel:   "info",
		LogFile:    "tunebite.log",
	}
}

// Validate reports every invalid field at once
func (c Config) Validate() error {
	var merr *multierror.Error

	if c.Cells <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("cells must be positive, got %d", c.Cells))
	}
	if c.CellSize <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("cell size must be positive, got %d", c.CellSize))
	}
	if c.Offset < 0 {
		merr = multierror.Append(merr, fmt.Errorf("offset must not be negative, got %d", c.Offset))
	}
	if c.TickInterval <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("tick interval must be positive, got %v", c.TickInterval))
	}
	if c.FPS <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.Frontend != FrontendWindow && c.Frontend != FrontendTerminal {
		merr = multierror.Append(merr, fmt.Errorf("unknown frontend %q", c.Frontend))
	}
	if len(c.Tracks) == 0 {
		merr = multierror.Append(merr, fmt.Errorf("at least one background track is required"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("log level: %w", err))
	}

	return merr.ErrorOrNil()
}

// AssetPath resolves a path relative to the asset root
func (c Config) AssetPath(rel string) string {
	return filepath.Join(c.AssetDir, rel)
}

// TrackIDs lists the background track ids in order
func (c Config) TrackIDs() []string {
	ids := make([]string, len(c.Tracks))
	for i, t := range c.Tracks {
		ids[i] = t.ID
	}
	return ids
}

// Grid is the square play field
func (c Config) Grid() types.Grid {
	return types.NewSquareGrid(c.Cells)
}

// WindowSize is the window size in pixels: the grid plus the margin on both sides
func (c Config) WindowSize() (int, int) {
	side := 2*c.Offset + c.CellSize*c.Cells
	return side, side
}
