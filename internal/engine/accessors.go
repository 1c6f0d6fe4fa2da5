package engine

import (
	"context"
	"slices"

	"github.com/abhisek/timesmaster/internal/achievements"
	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/problemgen"
	"github.com/abhisek/timesmaster/internal/session"
	"github.com/abhisek/timesmaster/internal/store"
)

// MasteredCount returns the number of mastered grid facts, out of 81.
func (e *Engine) MasteredCount() int {
	return e.history.MasteredCount()
}

// EarnedAchievements returns earned achievement ids in earned order.
func (e *Engine) EarnedAchievements() []string {
	return e.evaluator.EarnedIDs()
}

// Session returns a copy of the session counters.
func (e *Engine) Session() session.State {
	return e.state.Clone()
}

// History returns the fact history. Callers must treat it as read-only.
func (e *Engine) History() *mastery.History {
	return e.history
}

// Current returns the question on screen and whether there is one.
func (e *Engine) Current() (problemgen.Question, bool) {
	return e.current, !e.current.IsZero()
}

// Locked reports whether the current question has been answered.
func (e *Engine) Locked() bool {
	return e.locked
}

// Difficulty returns the active mode.
func (e *Engine) Difficulty() problemgen.Difficulty {
	return e.difficulty
}

// CustomTables returns the custom operands, sorted.
func (e *Engine) CustomTables() []int {
	return slices.Clone(e.custom)
}

// OperandSet returns the operands questions are currently drawn from.
func (e *Engine) OperandSet() []int {
	return problemgen.OperandSet(e.difficulty, e.custom)
}

// Badges returns the badge presentation queue.
func (e *Engine) Badges() *achievements.Queue {
	return e.badges
}

// Achievements returns the evaluator holding the earned set.
func (e *Engine) Achievements() *achievements.Evaluator {
	return e.evaluator
}

// Counters returns the values achievements are measured against.
func (e *Engine) Counters() achievements.Counters {
	c := e.counters()
	c.TableProgress = e.state.Clone().TableProgress
	return c
}

// SessionID returns the id of the running session.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Summary builds the end-of-session summary.
func (e *Engine) Summary() *session.SessionSummary {
	var names []string
	for _, id := range e.evaluator.EarnedIDs() {
		if a, ok := achievements.Lookup(id); ok {
			names = append(names, a.Name)
		}
	}
	return session.BuildSummary(e.state, e.now(), e.MasteredCount(), names)
}

// Finish records the end of the session and returns its summary.
func (e *Engine) Finish() *session.SessionSummary {
	summary := e.Summary()
	e.log.Info("session finished",
		"answered", summary.TotalAnswered,
		"correct", summary.TotalCorrect,
		"mastered", summary.MasteredCount,
	)
	e.record(func(ctx context.Context, repo store.EventRepo) error {
		return repo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:         e.sessionID,
			Action:            store.SessionEnd,
			Difficulty:        string(e.difficulty),
			QuestionsAnswered: summary.TotalAnswered,
			CorrectAnswers:    summary.TotalCorrect,
			DurationSecs:      int(summary.Duration.Seconds()),
		})
	})
	return summary
}

// AnswerLog returns the answers of the running session, newest first.
// It is empty when the engine has no event repo.
func (e *Engine) AnswerLog(ctx context.Context, limit int) ([]store.AnswerEventRecord, error) {
	if e.events == nil {
		return nil, nil
	}
	return e.events.QueryAnswerEvents(ctx, store.QueryOpts{
		SessionID: e.sessionID,
		Limit:     limit,
		Newest:    true,
	})
}

// TableAccuracy returns per-table answer stats for the running session.
func (e *Engine) TableAccuracy(ctx context.Context) (map[int]store.TableStats, error) {
	if e.events == nil {
		return nil, nil
	}
	return e.events.TableAccuracy(ctx, e.sessionID)
}

// AchievementLog returns the achievements earned in the running session
// with the time each was stored, oldest first.
func (e *Engine) AchievementLog(ctx context.Context) ([]store.AchievementEventRecord, error) {
	if e.events == nil {
		return nil, nil
	}
	return e.events.QueryAchievementEvents(ctx, store.QueryOpts{SessionID: e.sessionID})
}
