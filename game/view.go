package game

import (
	"tunebite/game/types"
)

// View is a read-only snapshot of what a renderer needs for one frame
type View struct {
	Grid  types.Grid
	State types.State
	Score int
	Best  int
	Games int
	// Average is the mean score of the recent finished runs
	Average float64

	Body      []types.Point
	Direction types.Direction
	Food      types.Point

	HasSpecial   bool
	Special      types.Point
	SpecialTimer int

	Track string
}

// View copies out the current state. The returned slices are not shared with the game.
func (g *Game) View() View {
	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)

	v := View{
		Grid:      g.cfg.Grid,
		State:     g.states.State(),
		Score:     g.states.Score(),
		Best:      g.states.Best(),
		Games:     g.states.Games(),
		Average:   g.states.Average(),
		Body:      body,
		Direction: g.snake.Direction,
		Track:     g.music.Current(),
	}
	if f := g.foods.Food(); f != nil {
		v.Food = f.Position
	}
	if sf := g.foods.Special(); sf != nil {
		v.HasSpecial = true
		v.Special = sf.Position
		v.SpecialTimer = sf.Timer
	}
	return v
}
