package types

import "fmt"

// Direction is a cardinal direction
type Direction int

const (
	NONE Direction = iota
	UP
	RIGHT
	DOWN
	LEFT
)

// Vector converts a Direction into a unit displacement
func (d Direction) Vector() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	case NONE:
		return "none"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Action is a discrete player input
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionStart
	ActionQuit
)

// Direction returns the direction carried by a movement action
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return UP, true
	case ActionDown:
		return DOWN, true
	case ActionLeft:
		return LEFT, true
	case ActionRight:
		return RIGHT, true
	}
	return NONE, false
}

// State is the game state tag
type State int

const (
	Home State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Home:
		return "HOME"
	case Running:
		return "RUNNING"
	case Stopped:
		return "STOPPED"
	}
	return fmt.Sprintf("State(%d)", int(s))
}
