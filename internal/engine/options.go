package engine

import (
	"log/slog"
	"time"

	"github.com/abhisek/timesmaster/internal/problemgen"
	"github.com/abhisek/timesmaster/internal/store"
)

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the randomness used for question selection.
func WithRand(r problemgen.RandSource) Option {
	return func(e *Engine) { e.rand = r }
}

// WithSelector replaces the weighted selector.
func WithSelector(s problemgen.Selector) Option {
	return func(e *Engine) { e.selector = s }
}

// WithEventRepo records answers, achievements and session markers.
func WithEventRepo(repo store.EventRepo) Option {
	return func(e *Engine) { e.events = repo }
}

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDifficulty sets the initial mode and custom operands.
func WithDifficulty(d problemgen.Difficulty, custom []int) Option {
	return func(e *Engine) {
		e.difficulty = d
		e.custom = custom
	}
}

// WithClock sets the time source used for response times and summaries.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}
