// Package history lists the answers given in the running session.
package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/screen"
	"github.com/abhisek/timesmaster/internal/store"
	"github.com/abhisek/timesmaster/internal/ui/layout"
	"github.com/abhisek/timesmaster/internal/ui/theme"
)

// logLimit caps how many answers are loaded.
const logLimit = 200

type historyLoadedMsg struct {
	Answers []store.AnswerEventRecord
	Err     error
}

// HistoryScreen shows answers newest first. Enter expands a row.
type HistoryScreen struct {
	env      *screen.Env
	answers  []store.AnswerEventRecord
	selected int
	offset   int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(env *screen.Env) *HistoryScreen {
	return &HistoryScreen{
		env:      env,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	eng := s.env.Engine
	return func() tea.Msg {
		answers, err := eng.AnswerLog(context.Background(), logLimit)
		return historyLoadedMsg{Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.answers = msg.Answers
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.answers)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	if s.errMsg != "" {
		return center(lipgloss.NewStyle().Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg)))
	}
	if !s.loaded {
		return center(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("\n\n  Loading history..."))
	}
	if len(s.answers) == 0 {
		return center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No answers yet. Start practicing!"))
	}

	visible := max(height-2, 3)
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+visible {
		s.offset = s.selected - visible + 1
	}

	var lines []string
	for i := s.offset; i < len(s.answers) && len(lines) < visible; i++ {
		lines = append(lines, center(s.renderRow(i)))
		if s.expanded[i] {
			for _, d := range details(s.answers[i]) {
				lines = append(lines, center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(d)))
			}
		}
	}

	return "\n" + strings.Join(lines, "\n")
}

func (s *HistoryScreen) renderRow(i int) string {
	a := s.answers[i]

	var mark, given string
	var col color.Color
	switch a.Outcome {
	case store.OutcomeCorrect:
		mark, col = "✓", theme.Success
	case store.OutcomeIncorrect:
		mark, col = "✗", theme.Error
	default:
		mark, col = "?", theme.Accent
	}
	if a.LearnerAnswer != nil {
		given = fmt.Sprint(*a.LearnerAnswer)
	} else {
		given = "-"
	}

	prefix := "  "
	if i == s.selected {
		prefix = "▸ "
	}
	line := fmt.Sprintf("%s%s  %d × %d = %-3d  you: %-4s %s  %4.1fs",
		prefix,
		a.Timestamp.Format("15:04:05"),
		a.Operand1, a.Operand2, a.CorrectAnswer,
		given, mark,
		float64(a.TimeMs)/1000,
	)

	style := lipgloss.NewStyle().Foreground(col)
	if i == s.selected {
		style = style.Bold(true)
	}
	return style.Render(line)
}

// details describes what an answer changed.
func details(a store.AnswerEventRecord) []string {
	var out []string
	if a.StatusBefore != a.StatusAfter {
		out = append(out, fmt.Sprintf("    %s → %s",
			mastery.Status(a.StatusBefore).DisplayName(),
			mastery.Status(a.StatusAfter).DisplayName()))
	} else {
		out = append(out, "    Status: "+mastery.Status(a.StatusAfter).DisplayName())
	}
	if a.Diagnosis != "" {
		out = append(out, "    Mistake: "+strings.ReplaceAll(a.Diagnosis, "-", " "))
	}
	out = append(out, "    Difficulty: "+a.Difficulty)
	return out
}
