package session

import (
	"maps"
	"time"

	"github.com/abhisek/timesmaster/internal/mastery"
)

// Outcome is the learner's terminal response to one question.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeIncorrect
	OutcomeDontKnow
)

// String returns the outcome name used in logs and the event store.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeDontKnow:
		return "dont_know"
	default:
		return "unknown"
	}
}

// State holds the running counters for one session.
type State struct {
	// TotalCorrect is the number of correct answers. Never decreases.
	TotalCorrect int

	// CurrentStreak counts consecutive correct answers. Any incorrect or
	// don't-know answer resets it to 0.
	CurrentStreak int

	// MaxStreak is the high-water mark of CurrentStreak.
	MaxStreak int

	// TableProgress maps an operand to the number of correct answers it
	// appeared in. Both factors count, so 4×4 adds 2 to operand 4.
	TableProgress map[int]int

	TotalAnswered  int
	TotalIncorrect int
	TotalDontKnow  int

	// StartTime is when the session began.
	StartTime time.Time
}

// NewState creates a state with table progress zeroed for the 1..9 grid.
func NewState(start time.Time) *State {
	progress := make(map[int]int, mastery.GridMax)
	for n := mastery.GridMin; n <= mastery.GridMax; n++ {
		progress[n] = 0
	}
	return &State{
		TableProgress: progress,
		StartTime:     start,
	}
}

// Clone returns a deep copy safe to hand to the presentation layer.
func (s *State) Clone() State {
	c := *s
	c.TableProgress = maps.Clone(s.TableProgress)
	return c
}

// Accuracy returns the share of answered questions that were correct.
func (s *State) Accuracy() float64 {
	if s.TotalAnswered == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalAnswered)
}
