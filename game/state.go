package game

import "fmt"

// State is the phase of the game
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is a snapshot of the scoring state
type Session struct {
	ID             string
	State          State
	Score          int
	BestScore      int
	Lives          int
	Wave           int
	Kills          int
	EnemiesPerWave int
	SpawnInterval  float64
}
