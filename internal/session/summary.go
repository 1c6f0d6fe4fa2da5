package session

import "time"

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	Duration       time.Duration
	TotalAnswered  int
	TotalCorrect   int
	TotalIncorrect int
	TotalDontKnow  int
	Accuracy       float64
	MaxStreak      int
	MasteredCount  int
	Achievements   []string // earned achievement names, in earned order
}

// BuildSummary creates a SessionSummary from the session state at now.
func BuildSummary(state *State, now time.Time, masteredCount int, achievements []string) *SessionSummary {
	var d time.Duration
	if !state.StartTime.IsZero() {
		d = now.Sub(state.StartTime)
	}
	return &SessionSummary{
		Duration:       d,
		TotalAnswered:  state.TotalAnswered,
		TotalCorrect:   state.TotalCorrect,
		TotalIncorrect: state.TotalIncorrect,
		TotalDontKnow:  state.TotalDontKnow,
		Accuracy:       state.Accuracy(),
		MaxStreak:      state.MaxStreak,
		MasteredCount:  masteredCount,
		Achievements:   append([]string(nil), achievements...),
	}
}
