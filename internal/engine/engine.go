// Package engine ties question selection, mastery tracking, session
// counters and achievements together behind the operations the
// presentation layer calls. An Engine is not safe for concurrent use.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/timesmaster/internal/achievements"
	"github.com/abhisek/timesmaster/internal/diagnosis"
	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/problemgen"
	"github.com/abhisek/timesmaster/internal/session"
	"github.com/abhisek/timesmaster/internal/store"
)

// ErrInvalidOperand is returned for custom operands outside 1..9.
var ErrInvalidOperand = errors.New("invalid operand")

// Engine owns all state for one drill session.
type Engine struct {
	rand      problemgen.RandSource
	selector  problemgen.Selector
	diagnoser *diagnosis.Service
	events    store.EventRepo
	logger    *slog.Logger
	log       *slog.Logger // logger scoped to the running session
	now       func() time.Time

	difficulty problemgen.Difficulty
	custom     []int

	sessionID string
	history   *mastery.History
	recent    *problemgen.RecentQueue
	state     *session.State
	evaluator *achievements.Evaluator
	badges    *achievements.Queue

	current problemgen.Question
	askedAt time.Time
	locked  bool
}

// New creates an engine and starts a session.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		difficulty: problemgen.DifficultyMixed,
		diagnoser:  diagnosis.NewService(),
		logger:     slog.New(slog.DiscardHandler),
		now:        time.Now,
		evaluator:  achievements.NewEvaluator(),
		badges:     achievements.NewQueue(),
		recent:     problemgen.NewRecentQueue(problemgen.RecentCapacity),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.rand == nil {
		e.rand = rand.New(rand.NewPCG(uint64(e.now().UnixNano()), rand.Uint64()))
	}
	if e.selector == nil {
		e.selector = problemgen.NewSelector(e.rand)
	}

	custom, err := normalizeOperands(e.custom)
	if err != nil {
		return nil, err
	}
	e.custom = custom

	e.startSession()
	return e, nil
}

func (e *Engine) startSession() {
	e.sessionID = uuid.NewString()
	e.history = mastery.NewHistory()
	e.state = session.NewState(e.now())
	e.evaluator.Reset()
	e.badges.Clear()
	e.recent.Clear()
	e.current = problemgen.Question{}
	e.locked = false

	e.log = e.logger.With("session_id", e.sessionID)
	e.log.Info("session started", "difficulty", e.difficulty)
	e.record(func(ctx context.Context, repo store.EventRepo) error {
		return repo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:  e.sessionID,
			Action:     store.SessionStart,
			Difficulty: string(e.difficulty),
		})
	})
}

// Reset discards all session state and starts a new session with the
// current difficulty.
func (e *Engine) Reset() {
	e.startSession()
}

// GenerateQuestion picks the next question, counts it as asked, pushes it
// onto the recent queue and clears the lock.
func (e *Engine) GenerateQuestion() problemgen.Question {
	q := e.selector.Select(e.difficulty, e.custom, e.history, e.recent)

	if _, known := e.history.Lookup(q.Key); !known {
		e.log.Debug("tracking off-grid fact", "fact", q.Key)
	}
	e.history.MarkAsked(q.Fact())
	e.recent.Push(q.Key)

	e.current = q
	e.askedAt = e.now()
	e.locked = false

	e.log.Debug("question generated", "fact", q.Key, "status", e.history.Status(q.Fact()))
	return q
}

// SubmitAnswer scores raw against the current question. It returns a nil
// Result and nil error when there is no question or it was already
// answered. Input that is not a whole number returns ErrInvalidAnswer and
// leaves the question open.
func (e *Engine) SubmitAnswer(raw string) (*Result, error) {
	if e.current.IsZero() || e.locked {
		return nil, nil
	}

	given, correct, err := problemgen.CheckAnswer(raw, e.current)
	if err != nil {
		e.log.Debug("invalid answer", "fact", e.current.Key, "input", raw)
		return nil, err
	}

	outcome := session.OutcomeIncorrect
	if correct {
		outcome = session.OutcomeCorrect
	}
	return e.resolve(outcome, &given), nil
}

// SubmitDontKnow records a "don't know" for the current question. Same
// locking rule as SubmitAnswer.
func (e *Engine) SubmitDontKnow() *Result {
	if e.current.IsZero() || e.locked {
		return nil
	}
	return e.resolve(session.OutcomeDontKnow, nil)
}

func (e *Engine) resolve(outcome session.Outcome, given *int) *Result {
	e.locked = true
	q := e.current
	elapsed := e.now().Sub(e.askedAt)

	stats := e.history.Get(q.Fact())
	before := stats.Status()
	accuracyBefore := stats.Accuracy()

	session.ApplyOutcome(e.state, q, outcome, stats)
	after := stats.Status()

	res := &Result{
		Outcome:    outcome,
		Question:   q,
		Given:      given,
		FactStatus: after,
		Feedback:   session.FeedbackText(outcome, q, e.state.CurrentStreak),
	}
	if before != after {
		res.StatusChange = &mastery.StatusChange{Key: q.Key, From: before, To: after}
	}

	switch outcome {
	case session.OutcomeIncorrect:
		res.Diagnosis = e.diagnoser.Diagnose(q, *given, int(elapsed.Milliseconds()), accuracyBefore)
	case session.OutcomeDontKnow:
		res.Explanation = problemgen.Explain(q)
	}

	res.NewAchievements = e.evaluator.Check(e.counters())
	res.BadgeStarted = e.badges.Enqueue(res.NewAchievements...)
	res.Session = e.state.Clone()

	e.log.Info("answer",
		"fact", q.Key,
		"outcome", outcome,
		"status", after,
		"streak", e.state.CurrentStreak,
		"elapsed_ms", elapsed.Milliseconds(),
	)
	for _, a := range res.NewAchievements {
		e.log.Info("achievement earned", "id", a.ID, "name", a.Name)
	}

	e.recordAnswer(res, before, elapsed)
	return res
}

func (e *Engine) recordAnswer(res *Result, before mastery.Status, elapsed time.Duration) {
	diag := ""
	if res.Diagnosis != nil {
		diag = string(res.Diagnosis.Category)
	}
	e.record(func(ctx context.Context, repo store.EventRepo) error {
		err := repo.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:     e.sessionID,
			Difficulty:    string(e.difficulty),
			Operand1:      res.Question.Operand1,
			Operand2:      res.Question.Operand2,
			FactKey:       string(res.Question.Key),
			Outcome:       res.Outcome.String(),
			CorrectAnswer: res.Question.Answer,
			LearnerAnswer: res.Given,
			TimeMs:        elapsed.Milliseconds(),
			StatusBefore:  string(before),
			StatusAfter:   string(res.FactStatus),
			Diagnosis:     diag,
		})
		if err != nil {
			return err
		}
		for _, a := range res.NewAchievements {
			err := repo.AppendAchievementEvent(ctx, store.AchievementEventData{
				SessionID:     e.sessionID,
				AchievementID: a.ID,
				Name:          a.Name,
				Family:        string(a.Family),
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// record runs fn against the event repo. Store failures are logged and
// never fail the caller.
func (e *Engine) record(fn func(context.Context, store.EventRepo) error) {
	if e.events == nil {
		return
	}
	if err := fn(context.Background(), e.events); err != nil {
		e.log.Warn("event store write failed", "error", err)
	}
}

func (e *Engine) counters() achievements.Counters {
	return achievements.Counters{
		TotalCorrect:  e.state.TotalCorrect,
		MaxStreak:     e.state.MaxStreak,
		TableProgress: e.state.TableProgress,
	}
}

// SetDifficulty changes the operand set for later questions. Custom
// operands must be in 1..9; duplicates are dropped. Nothing else is reset.
func (e *Engine) SetDifficulty(d problemgen.Difficulty, custom []int) error {
	ops, err := normalizeOperands(custom)
	if err != nil {
		return err
	}
	e.difficulty = d
	e.custom = ops
	e.log.Info("difficulty changed", "difficulty", d, "tables", ops)
	return nil
}

func normalizeOperands(ops []int) ([]int, error) {
	if len(ops) == 0 {
		return nil, nil
	}
	out := make([]int, 0, len(ops))
	for _, n := range ops {
		if !mastery.InGrid(n) {
			return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidOperand, n, mastery.GridMin, mastery.GridMax)
		}
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return out, nil
}
