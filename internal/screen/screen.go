package screen

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timesmaster/internal/engine"
	"github.com/abhisek/timesmaster/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscapeHandler is implemented by screens that handle Esc themselves
// instead of letting the app pop them.
type EscapeHandler interface {
	HandlesEscape() bool
}

// Timing holds the drill's auto-advance and popup delays.
type Timing struct {
	Correct   time.Duration
	Incorrect time.Duration
	DontKnow  time.Duration
	Badge     time.Duration
}

// DefaultTiming returns the standard delays.
func DefaultTiming() Timing {
	return Timing{
		Correct:   800 * time.Millisecond,
		Incorrect: 1200 * time.Millisecond,
		DontKnow:  2500 * time.Millisecond,
		Badge:     2400 * time.Millisecond,
	}
}

// Env is shared by every screen: the practice engine plus presentation
// settings. Screens hold a pointer so difficulty changes are seen everywhere.
type Env struct {
	Engine *engine.Engine
	Timing Timing
	Logger *slog.Logger
}

// NewEnv builds an Env, filling zero delays with defaults.
func NewEnv(eng *engine.Engine, timing Timing, logger *slog.Logger) *Env {
	def := DefaultTiming()
	if timing.Correct <= 0 {
		timing.Correct = def.Correct
	}
	if timing.Incorrect <= 0 {
		timing.Incorrect = def.Incorrect
	}
	if timing.DontKnow <= 0 {
		timing.DontKnow = def.DontKnow
	}
	if timing.Badge <= 0 {
		timing.Badge = def.Badge
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Env{Engine: eng, Timing: timing, Logger: logger}
}
