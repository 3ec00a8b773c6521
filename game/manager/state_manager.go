package manager

import (
	"time"

	"tunebite/game/types"
)

// maxScores is how many finished runs the session history keeps
const maxScores = 50

// GameRecord is one finished run
type GameRecord struct {
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Cause     CollisionType
}

// StateManager holds the state tag, the running score and the session's
// finished runs. Nothing is written to disk.
type StateManager struct {
	state     types.State
	score     int
	startTime time.Time
	highScore int
	games     int
	history   []GameRecord
	now       func() time.Time
}

func NewStateManager() *StateManager {
	return &StateManager{
		state:   types.Home,
		history: make([]GameRecord, 0, maxScores),
		now:     time.Now,
	}
}

func (sm *StateManager) State() types.State {
	return sm.state
}

func (sm *StateManager) Score() int {
	return sm.score
}

// Begin enters RUNNING with a zero score
func (sm *StateManager) Begin() {
	sm.state = types.Running
	sm.score = 0
	sm.startTime = sm.now()
}

// Add increases the score of the current run
func (sm *StateManager) Add(points int) {
	sm.score += points
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// End enters STOPPED and records the run. The score is kept for display.
func (sm *StateManager) End(cause CollisionType) GameRecord {
	sm.state = types.Stopped
	sm.games++

	rec := GameRecord{
		StartTime: sm.startTime,
		EndTime:   sm.now(),
		Score:     sm.score,
		Cause:     cause,
	}
	if len(sm.history) >= maxScores {
		sm.history = sm.history[1:]
	}
	sm.history = append(sm.history, rec)
	return rec
}

// Best is the highest score reached this session
func (sm *StateManager) Best() int {
	return sm.highScore
}

// Games is the number of finished runs this session
func (sm *StateManager) Games() int {
	return sm.games
}

// History returns the most recent finished runs, oldest first
func (sm *StateManager) History() []GameRecord {
	h := make([]GameRecord, len(sm.history))
	copy(h, sm.history)
	return h
}

// Average is the mean score over the kept history
func (sm *StateManager) Average() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	sum := 0
	for _, r := range sm.history {
		sum += r.Score
	}
	return float64(sum) / float64(len(sm.history))
}
