package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"tunebite/config"
	"tunebite/game"
)

func main() {
	cfg := config.Default()

	flag.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Time between snake moves")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frame rate cap")
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels (window frontend)")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = seed from the clock)")
	flag.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "Frontend to run: window or terminal")
	flag.StringVar(&cfg.AssetDir, "assets", cfg.AssetDir, "Directory holding Sounds/ and Graphics/")
	flag.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable music and sound effects")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file used by the terminal frontend")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	logger.Info().
		Str("frontend", cfg.Frontend).
		Uint64("seed", seed).
		Dur("tick", cfg.TickInterval).
		Msg("Starting")

	switch cfg.Frontend {
	case config.FrontendTerminal:
		err = runTerminal(cfg, rng, logger)
	default:
		err = runWindow(cfg, rng, logger)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("Exiting")
	}
}

// newLogger writes to stderr, except for the terminal frontend where stderr
// shares the screen and a log file is used instead
func newLogger(cfg config.Config) (zerolog.Logger, func() error, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	closeLog := func() error { return nil }
	if cfg.Frontend == config.FrontendTerminal {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		out = zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.RFC3339}
		closeLog = f.Close
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closeLog, nil
}

// newGame builds the core with the rules every frontend shares
func newGame(cfg config.Config, rng *rand.Rand, audio game.Audio, logger zerolog.Logger) (*game.Game, error) {
	return game.NewGame(game.Config{
		Grid:   cfg.Grid(),
		Tracks: cfg.TrackIDs(),
	}, rng, audio, logger)
}
