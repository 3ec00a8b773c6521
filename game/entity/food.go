package entity

import (
	"errors"

	"tunebite/game/types"
)

// ErrNoFreeCell is returned when every grid cell is occupied
var ErrNoFreeCell = errors.New("no free cell left on the grid")

// maxSpawnTries bounds random sampling before falling back to a scan of free cells
const maxSpawnTries = 64

// SpawnAvoiding returns a random cell of grid that is not in occupied.
// Random sampling is tried first; once the board is crowded a uniform choice
// among the remaining free cells is made instead.
func SpawnAvoiding(grid types.Grid, rng types.Rand, occupied []types.Point) (types.Point, error) {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		if grid.Contains(p) {
			taken[p] = struct{}{}
		}
	}
	if len(taken) >= grid.Area() {
		return types.Point{}, ErrNoFreeCell
	}

	for i := 0; i < maxSpawnTries; i++ {
		p := grid.RandomCell(rng)
		if _, ok := taken[p]; !ok {
			return p, nil
		}
	}

	free := make([]types.Point, 0, grid.Area()-len(taken))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free[rng.Intn(len(free))], nil
}

// Food is a single cell the snake can eat
type Food struct {
	Position types.Point
}

// NewFood places food on a free cell
func NewFood(grid types.Grid, rng types.Rand, occupied []types.Point) (*Food, error) {
	pos, err := SpawnAvoiding(grid, rng, occupied)
	if err != nil {
		return nil, err
	}
	return &Food{Position: pos}, nil
}

// Respawn moves the food to a new free cell
func (f *Food) Respawn(grid types.Grid, rng types.Rand, occupied []types.Point) error {
	pos, err := SpawnAvoiding(grid, rng, occupied)
	if err != nil {
		return err
	}
	f.Position = pos
	return nil
}

// SpecialFood is food that disappears after a fixed number of ticks
type SpecialFood struct {
	Food
	Timer int
}

func NewSpecialFood(grid types.Grid, rng types.Rand, occupied []types.Point) (*SpecialFood, error) {
	pos, err := SpawnAvoiding(grid, rng, occupied)
	if err != nil {
		return nil, err
	}
	return &SpecialFood{
		Food:  Food{Position: pos},
		Timer: types.SpecialFoodLifetime,
	}, nil
}

// Tick counts down one tick and reports whether the food has expired
func (sf *SpecialFood) Tick() bool {
	sf.Timer--
	return sf.Timer <= 0
}
