package entity

import (
	"tunebite/game/types"
)

// Snake is an ordered list of cells, head first, plus the turns waiting to be applied
type Snake struct {
	Body      []types.Point
	Direction types.Direction

	queue      []types.Direction
	addSegment bool
}

// NewSnake returns a snake in its starting position
func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// NewSnakeAt returns a snake with the given body (head first) moving in dir
func NewSnakeAt(body []types.Point, dir types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		Body:      b,
		Direction: dir,
		queue:     make([]types.Direction, 0, types.MaxQueuedTurns),
	}
}

// Reset restores the starting body and direction and drops queued turns and pending growth
func (s *Snake) Reset() {
	s.Body = types.InitialBody()
	s.Direction = types.InitialDirection
	s.queue = make([]types.Direction, 0, types.MaxQueuedTurns)
	s.addSegment = false
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// Advance moves the head one cell along the current direction. The tail is
// kept when growth was requested. A queued turn, if any, becomes the
// direction for the next tick.
func (s *Snake) Advance() {
	newHead := s.GetHead().Add(s.Direction.Vector())

	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead

	if s.addSegment {
		s.addSegment = false
	} else {
		s.Body = s.Body[:len(s.Body)-1]
	}

	if len(s.queue) > 0 {
		s.Direction = s.queue[0]
		s.queue = s.queue[1:]
	}
}

// EnqueueDirection queues a turn. It is rejected when it reverses the last
// queued direction (or the current one when nothing is queued), or when the
// queue is full.
func (s *Snake) EnqueueDirection(d types.Direction) bool {
	if d == types.NONE {
		return false
	}

	last := s.Direction
	if n := len(s.queue); n > 0 {
		last = s.queue[n-1]
	}
	if d == last.Opposite() {
		return false
	}
	if len(s.queue) >= types.MaxQueuedTurns {
		return false
	}

	s.queue = append(s.queue, d)
	return true
}

// Queued returns the turns waiting to be applied, oldest first
func (s *Snake) Queued() []types.Direction {
	q := make([]types.Direction, len(s.queue))
	copy(q, s.queue)
	return q
}

// RequestGrowth makes the next Advance keep the tail
func (s *Snake) RequestGrowth() {
	s.addSegment = true
}

func (s *Snake) GrowthPending() bool {
	return s.addSegment
}

// Occupies reports whether p is part of the body
func (s *Snake) Occupies(p types.Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}
