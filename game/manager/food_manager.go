package manager

import (
	"tunebite/game/entity"
	"tunebite/game/types"
)

// FoodManager owns the plain food and the optional special food
type FoodManager struct {
	grid    types.Grid
	rng     types.Rand
	food    *entity.Food
	special *entity.SpecialFood
}

func NewFoodManager(grid types.Grid, rng types.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

func (fm *FoodManager) Food() *entity.Food {
	return fm.food
}

// Special returns the special food on the board, or nil
func (fm *FoodManager) Special() *entity.SpecialFood {
	return fm.special
}

// RespawnFood places the plain food on a cell free of the body and of special food
func (fm *FoodManager) RespawnFood(body []types.Point) error {
	occupied := body
	if fm.special != nil {
		occupied = append(append([]types.Point(nil), body...), fm.special.Position)
	}

	if fm.food == nil {
		f, err := entity.NewFood(fm.grid, fm.rng, occupied)
		if err != nil {
			return err
		}
		fm.food = f
		return nil
	}
	return fm.food.Respawn(fm.grid, fm.rng, occupied)
}

// SpawnSpecial places special food unless one is already on the board.
// It reports whether a new one was created.
func (fm *FoodManager) SpawnSpecial(body []types.Point) (bool, error) {
	if fm.special != nil {
		return false, nil
	}

	occupied := body
	if fm.food != nil {
		occupied = append(append([]types.Point(nil), body...), fm.food.Position)
	}

	sf, err := entity.NewSpecialFood(fm.grid, fm.rng, occupied)
	if err != nil {
		return false, err
	}
	fm.special = sf
	return true, nil
}

// ConsumeSpecial removes the special food if it sits at pos
func (fm *FoodManager) ConsumeSpecial(pos types.Point) bool {
	if fm.special == nil || fm.special.Position != pos {
		return false
	}
	fm.special = nil
	return true
}

// TickSpecial counts the special food down and removes it on expiry.
// It reports whether the special food expired on this tick.
func (fm *FoodManager) TickSpecial() bool {
	if fm.special == nil {
		return false
	}
	if fm.special.Tick() {
		fm.special = nil
		return true
	}
	return false
}

// ClearSpecial removes the special food without scoring it
func (fm *FoodManager) ClearSpecial() {
	fm.special = nil
}
