package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tunebite/game/entity"
	"tunebite/game/manager"
	"tunebite/game/types"
)

// Config holds the rules a Game is built with
type Config struct {
	Grid   types.Grid
	Tracks []string
}

// DefaultConfig is the 20x20 board with the three background tracks
func DefaultConfig() Config {
	return Config{
		Grid:   types.NewSquareGrid(types.GridCells),
		Tracks: []string{"bg1", "bg2", "bg3"},
	}
}

// Game owns the snake and the food and is the only thing that mutates them.
// It is not safe for concurrent use; the caller serializes Update and HandleAction.
type Game struct {
	RunID string

	cfg        Config
	rng        types.Rand
	audio      Audio
	log        zerolog.Logger
	snake      *entity.Snake
	foods      *manager.FoodManager
	collisions *manager.CollisionManager
	states     *manager.StateManager
	music      *manager.MusicManager
}

func NewGame(cfg Config, rng types.Rand, audio Audio, logger zerolog.Logger) (*Game, error) {
	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 {
		return nil, fmt.Errorf("invalid grid %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if rng == nil {
		return nil, errors.New("nil random source")
	}

	g := &Game{
		cfg:        cfg,
		rng:        rng,
		audio:      audio,
		log:        logger,
		snake:      entity.NewSnake(),
		foods:      manager.NewFoodManager(cfg.Grid, rng),
		collisions: manager.NewCollisionManager(cfg.Grid),
		states:     manager.NewStateManager(),
		music:      manager.NewMusicManager(cfg.Tracks),
	}
	if err := g.foods.RespawnFood(g.snake.Body); err != nil {
		return nil, fmt.Errorf("place food: %w", err)
	}
	return g, nil
}

func (g *Game) State() types.State {
	return g.states.State()
}

func (g *Game) Score() int {
	return g.states.Score()
}

// Track is the background track currently playing
func (g *Game) Track() string {
	return g.music.Current()
}

// Start begins a new run from HOME or STOPPED with a fresh snake, fresh food and a zero score
func (g *Game) Start() error {
	if g.states.State() == types.Running {
		return nil
	}

	g.snake = entity.NewSnake()
	g.foods = manager.NewFoodManager(g.cfg.Grid, g.rng)
	if err := g.foods.RespawnFood(g.snake.Body); err != nil {
		return fmt.Errorf("place food: %w", err)
	}
	g.states.Begin()
	g.RunID = uuid.New().String()

	g.music.Reset()
	track := g.music.Pick(g.rng)
	if track != "" {
		g.audio.PlayLoop(track)
	}

	g.log.Info().
		Str("run", g.RunID).
		Str("track", track).
		Msg("Run started")
	return nil
}

// HandleAction applies one input event. It reports whether the player asked to quit.
func (g *Game) HandleAction(a types.Action) (bool, error) {
	if a == types.ActionQuit {
		return true, nil
	}
	if a == types.ActionNone {
		return false, nil
	}

	if g.states.State() != types.Running {
		if err := g.Start(); err != nil {
			return false, err
		}
	}

	if d, ok := a.Direction(); ok {
		if !g.snake.EnqueueDirection(d) {
			g.log.Debug().Stringer("direction", d).Msg("Turn rejected")
		}
	}
	return false, nil
}

// Update advances the game by one tick. It does nothing unless a run is in progress.
func (g *Game) Update() error {
	if g.states.State() != types.Running {
		return nil
	}

	g.snake.Advance()
	head := g.snake.GetHead()

	if err := g.checkCollisionFood(head); err != nil {
		return err
	}
	g.checkCollisionSpecialFood(head)

	if cause := g.collisions.CheckCollision(g.snake); cause != manager.NoCollision {
		return g.gameOver(cause)
	}

	if g.foods.Special() == nil && g.rng.Intn(types.SpecialFoodRandomOdds) == 0 {
		if err := g.spawnSpecial("random"); err != nil {
			return err
		}
	}

	if g.foods.TickSpecial() {
		g.log.Debug().Str("run", g.RunID).Msg("Special food expired")
	}
	return nil
}

func (g *Game) checkCollisionFood(head types.Point) error {
	if !g.collisions.IsFoodCollision(head, g.foods.Food()) {
		return nil
	}

	if err := g.foods.RespawnFood(g.snake.Body); err != nil {
		return fmt.Errorf("respawn food: %w", err)
	}
	g.snake.RequestGrowth()
	g.states.Add(types.FoodPoints)
	g.audio.PlayOnce(SoundEat)

	g.log.Debug().
		Str("run", g.RunID).
		Int("score", g.states.Score()).
		Msg("Food eaten")

	if g.foods.Special() == nil && g.rng.Float64() < types.SpecialFoodOnEatChance {
		return g.spawnSpecial("eat")
	}
	return nil
}

func (g *Game) checkCollisionSpecialFood(head types.Point) {
	if !g.foods.ConsumeSpecial(head) {
		return
	}

	g.snake.RequestGrowth()
	g.states.Add(types.SpecialFoodPoints)

	prev := g.music.Current()
	track := g.music.Switch(g.rng)
	if track != prev {
		g.audio.PlayLoop(track)
	}

	g.log.Info().
		Str("run", g.RunID).
		Int("score", g.states.Score()).
		Str("track", track).
		Msg("Special food eaten")
}

func (g *Game) spawnSpecial(reason string) error {
	created, err := g.foods.SpawnSpecial(g.snake.Body)
	if err != nil {
		return fmt.Errorf("spawn special food: %w", err)
	}
	if created {
		g.log.Debug().
			Str("run", g.RunID).
			Str("reason", reason).
			Interface("at", g.foods.Special().Position).
			Msg("Special food spawned")
	}
	return nil
}

// gameOver resets the entities, keeps the score for display and stops the music
func (g *Game) gameOver(cause manager.CollisionType) error {
	rec := g.states.End(cause)

	g.snake.Reset()
	g.foods.ClearSpecial()
	if err := g.foods.RespawnFood(g.snake.Body); err != nil {
		return fmt.Errorf("respawn food: %w", err)
	}

	g.audio.StopMusic()
	g.music.Reset()
	g.audio.PlayOnce(SoundHit)

	g.log.Info().
		Str("run", g.RunID).
		Stringer("cause", cause).
		Int("score", rec.Score).
		Dur("duration", rec.EndTime.Sub(rec.StartTime)).
		Msg("Game over")
	return nil
}
