package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/mastery"
)

// Color palette, bright enough for a kids' drill game.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Mastery status colours: grey, yellow, red and green.
var (
	StatusNew           = lipgloss.Color("#64748B")
	StatusLearning      = lipgloss.Color("#EAB308")
	StatusNeedsPractice = lipgloss.Color("#EF4444")
	StatusMastered      = lipgloss.Color("#22C55E")
)

// StatusColor returns the colour used for a fact status.
func StatusColor(s mastery.Status) color.Color {
	switch s {
	case mastery.StatusLearning:
		return StatusLearning
	case mastery.StatusNeedsPractice:
		return StatusNeedsPractice
	case mastery.StatusMastered:
		return StatusMastered
	default:
		return StatusNew
	}
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Components
var (
	Question = lipgloss.NewStyle().
			Foreground(ArcadeYellow).
			Bold(true)

	Streak = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Badge = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ArcadeYellow).
		Foreground(Text).
		Bold(true).
		Align(lipgloss.Center).
		Padding(1, 4)
)
