package session

import (
	"fmt"

	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/problemgen"
)

// ApplyOutcome updates the session counters and the fact's statistics for
// one answered question. The fact's TotalAsked was already counted when the
// question was generated, and its status is derived from stats on read.
func ApplyOutcome(state *State, q problemgen.Question, outcome Outcome, stats *mastery.FactStats) {
	state.TotalAnswered++

	switch outcome {
	case OutcomeCorrect:
		state.TotalCorrect++
		state.CurrentStreak++
		if state.CurrentStreak > state.MaxStreak {
			state.MaxStreak = state.CurrentStreak
		}
		state.addTableProgress(q.Operand1, q.Operand2)
		if stats != nil {
			stats.RecordCorrect()
		}

	case OutcomeIncorrect:
		state.TotalIncorrect++
		state.CurrentStreak = 0
		if stats != nil {
			stats.RecordIncorrect()
		}

	case OutcomeDontKnow:
		state.TotalDontKnow++
		state.CurrentStreak = 0
		if stats != nil {
			stats.RecordDontKnow()
		}
	}
}

// StreakMessage returns the banner text for the current streak.
func StreakMessage(streak int) string {
	switch {
	case streak == 0:
		return "Start your streak! 🌟"
	case streak < 3:
		return fmt.Sprintf("%d in a row! Keep going! ⭐", streak)
	case streak < 5:
		return "On fire! 🔥"
	case streak < 10:
		return "AMAZING! 🔥🔥"
	case streak < 15:
		return "UNSTOPPABLE! 🔥🔥🔥"
	default:
		return "LEGENDARY! 🔥🔥🔥🔥"
	}
}

// OnFireStreak is the streak at which correct feedback gets the fire suffix.
const OnFireStreak = 5

// FeedbackText returns the message shown after an answer. streak is the
// streak after the answer was applied.
func FeedbackText(outcome Outcome, q problemgen.Question, streak int) string {
	switch outcome {
	case OutcomeCorrect:
		if streak >= OnFireStreak {
			return "🎉 Correct! You're on fire! 🔥"
		}
		return "🎉 Correct!"
	case OutcomeIncorrect:
		return fmt.Sprintf("Not quite! The answer is %d. Try the next one!", q.Answer)
	default:
		return fmt.Sprintf("No problem! %d × %d = %d", q.Operand1, q.Operand2, q.Answer)
	}
}

// InvalidInputText is shown when the answer is not a number.
const InvalidInputText = "Please enter a number!"
