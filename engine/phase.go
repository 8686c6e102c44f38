package engine

import "time"

// Phase is the session's top-level mode
type Phase uint8

const (
	// PhasePlaying runs input, trail, capture and enemies every Step
	PhasePlaying Phase = iota
	// PhaseLevelComplete is entered once the roster is empty; Step is inert
	PhaseLevelComplete
	// PhaseNextLevel is a placeholder with no further behavior
	PhaseNextLevel
)

// String returns human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseLevelComplete:
		return "LevelComplete"
	case PhaseNextLevel:
		return "NextLevel"
	default:
		return "Unknown"
	}
}

var validTransitions = map[Phase][]Phase{
	PhasePlaying:       {PhaseLevelComplete},
	PhaseLevelComplete: {PhaseNextLevel},
}

// CanTransition checks if a phase transition is valid
// NextLevel has no outgoing transitions
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// PhaseSnapshot provides a consistent view of phase state
type PhaseSnapshot struct {
	Phase     Phase
	StartTime time.Time
	Duration  time.Duration
}
