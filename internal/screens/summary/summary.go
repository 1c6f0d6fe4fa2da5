package summary

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/router"
	"github.com/abhisek/timesmaster/internal/screen"
	"github.com/abhisek/timesmaster/internal/session"
	"github.com/abhisek/timesmaster/internal/store"
	"github.com/abhisek/timesmaster/internal/ui/layout"
	"github.com/abhisek/timesmaster/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	env     *screen.Env
	summary *session.SessionSummary
	tables  map[int]store.TableStats
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New snapshots the running session's summary.
func New(env *screen.Env) *SummaryScreen {
	s := &SummaryScreen{env: env, summary: env.Engine.Summary()}

	tables, err := env.Engine.TableAccuracy(context.Background())
	if err != nil {
		env.Logger.Warn("summary table accuracy", "error", err)
	}
	s.tables = tables
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "N", Description: "New session"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, router.Back
		case "n", "N":
			s.env.Engine.Finish()
			s.env.Engine.Reset()
			return s, router.Back
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Great practice!")))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time: %d:%02d", mins, secs))))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answered: %d    Correct: %d    Wrong: %d    Skipped: %d",
		sum.TotalAnswered, sum.TotalCorrect, sum.TotalIncorrect, sum.TotalDontKnow)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Render(statsLine)))
	b.WriteString("\n")

	scoreLine := fmt.Sprintf("Accuracy: %.0f%%    Best streak: %d    Mastered: %d/%d",
		sum.Accuracy*100, sum.MaxStreak, sum.MasteredCount, len(mastery.GridFacts()))
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(scoreLine)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(max(width-8, 0), 60)))

	if rows := s.tableRows(); len(rows) > 0 {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Tables")))
		b.WriteString("\n")
		b.WriteString(center(divider))
		b.WriteString("\n")
		b.WriteString(center(strings.Join(rows, "\n")))
		b.WriteString("\n\n")
	}

	if len(sum.Achievements) > 0 {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Achievements")))
		b.WriteString("\n")
		b.WriteString(center(divider))
		b.WriteString("\n")
		for _, name := range sum.Achievements {
			b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Render("★ " + name)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// tableRows lists the tables that were practised with their accuracy.
func (s *SummaryScreen) tableRows() []string {
	var rows []string
	for n := 1; n <= 10; n++ {
		ts, ok := s.tables[n]
		if !ok || ts.Answered == 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if ts.Accuracy() >= 0.8 {
			style = style.Foreground(theme.Success)
		} else if ts.Accuracy() < 0.5 {
			style = style.Foreground(theme.Error)
		}
		rows = append(rows, style.Render(fmt.Sprintf("%2d times table   %2d/%-2d  %3.0f%%",
			n, ts.Correct, ts.Answered, ts.Accuracy()*100)))
	}
	return rows
}
