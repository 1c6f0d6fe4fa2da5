package engine

import (
	"github.com/abhisek/timesmaster/internal/achievements"
	"github.com/abhisek/timesmaster/internal/diagnosis"
	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/problemgen"
	"github.com/abhisek/timesmaster/internal/session"
)

// Result describes the effect of one answer.
type Result struct {
	Outcome  session.Outcome
	Question problemgen.Question

	// Given is the learner's number, nil for "don't know".
	Given *int

	// Session is a copy of the counters after the answer.
	Session session.State

	// FactStatus is the fact's status after the answer. StatusChange is
	// set only when the answer moved the fact to a different status.
	FactStatus   mastery.Status
	StatusChange *mastery.StatusChange

	// NewAchievements were earned by this answer, in evaluation order.
	// They have already been queued for presentation.
	NewAchievements []achievements.Achievement

	// BadgeStarted is true when queueing them moved the badge queue from
	// idle to presenting, so the caller must start a popup timer.
	BadgeStarted bool

	// Explanation is set for "don't know" answers.
	Explanation string

	// Diagnosis is set for incorrect answers.
	Diagnosis *diagnosis.DiagnosisResult

	// Feedback is the message to show the learner.
	Feedback string
}

// Correct reports whether the answer was right.
func (r *Result) Correct() bool {
	return r.Outcome == session.OutcomeCorrect
}
