package manager

import (
	"tunebite/game/entity"
	"tunebite/game/types"
)

// CollisionType represents the kind of collision that ended a run
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "none"
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsWallCollision checks if a position is outside the grid
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsSelfCollision checks if the head overlaps any other body segment
func (cm *CollisionManager) IsSelfCollision(body []types.Point) bool {
	if len(body) < 2 {
		return false
	}
	head := body[0]
	for _, p := range body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return food != nil && pos == food.Position
}

// CheckCollision reports the first fatal collision of the snake's current head
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	if cm.IsWallCollision(snake.GetHead()) {
		return WallCollision
	}
	if cm.IsSelfCollision(snake.Body) {
		return SelfCollision
	}
	return NoCollision
}
