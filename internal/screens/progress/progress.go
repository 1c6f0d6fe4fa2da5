// Package progress shows the 9×9 table coloured by mastery status.
package progress

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/router"
	"github.com/abhisek/timesmaster/internal/screen"
	"github.com/abhisek/timesmaster/internal/ui/layout"
	"github.com/abhisek/timesmaster/internal/ui/theme"
)

const cellWidth = 4

// ProgressScreen is a navigable grid of every fact on the table.
type ProgressScreen struct {
	env *screen.Env
	row int // operand 1, GridMin..GridMax
	col int // operand 2
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates the grid with the cursor on 1 × 1.
func New(env *screen.Env) *ProgressScreen {
	return &ProgressScreen{env: env, row: mastery.GridMin, col: mastery.GridMin}
}

func (s *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (s *ProgressScreen) Title() string {
	return "Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.row = clamp(s.row - 1)
	case "down", "j":
		s.row = clamp(s.row + 1)
	case "left", "h":
		s.col = clamp(s.col - 1)
	case "right", "l":
		s.col = clamp(s.col + 1)
	case "enter":
		return s, router.Navigate(newFactDetail(s.env, s.cursor()))
	}
	return s, nil
}

func clamp(n int) int {
	return max(mastery.GridMin, min(mastery.GridMax, n))
}

func (s *ProgressScreen) cursor() mastery.Fact {
	return mastery.Fact{A: s.row, B: s.col}
}

func (s *ProgressScreen) View(width, height int) string {
	history := s.env.Engine.History()

	var b strings.Builder
	b.WriteString(s.renderGrid(history))
	b.WriteString("\n\n")
	b.WriteString(renderCursorLine(history, s.cursor()))
	b.WriteString("\n\n")
	b.WriteString(renderLegend(history))

	return layout.Center(b.String(), width, height)
}

func (s *ProgressScreen) renderGrid(history *mastery.History) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)

	var lines []string
	header := strings.Repeat(" ", cellWidth)
	for col := mastery.GridMin; col <= mastery.GridMax; col++ {
		header += dim.Width(cellWidth).Align(lipgloss.Center).Render(fmt.Sprint(col))
	}
	lines = append(lines, header)

	for row := mastery.GridMin; row <= mastery.GridMax; row++ {
		line := dim.Width(cellWidth).Align(lipgloss.Center).Render(fmt.Sprint(row))
		for col := mastery.GridMin; col <= mastery.GridMax; col++ {
			f := mastery.Fact{A: row, B: col}
			line += renderCell(f, history.Status(f), row == s.row && col == s.col)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderCell(f mastery.Fact, status mastery.Status, selected bool) string {
	style := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Foreground(theme.BgDark).
		Background(theme.StatusColor(status))
	if status == mastery.StatusNew {
		style = style.Foreground(theme.Text)
	}
	if selected {
		style = style.Bold(true).Underline(true).Background(theme.ArcadeCyan).Foreground(theme.BgDark)
	}
	return style.Render(fmt.Sprint(f.Product()))
}

// renderCursorLine shows the selected fact as "7×8=56  ✓3 ✗1 ?0".
func renderCursorLine(history *mastery.History, f mastery.Fact) string {
	st, _ := history.Lookup(f.Key())
	status := history.Status(f)
	text := fmt.Sprintf("%d×%d=%d  ✓%d ✗%d ?%d  %s",
		f.A, f.B, f.Product(), st.Correct, st.Incorrect, st.DontKnow, status.DisplayName())
	return lipgloss.NewStyle().Foreground(theme.StatusColor(status)).Bold(true).Render(text)
}

func renderLegend(history *mastery.History) string {
	counts := history.CountByStatus()
	var parts []string
	for _, st := range mastery.AllStatuses() {
		swatch := lipgloss.NewStyle().Background(theme.StatusColor(st)).Render("  ")
		parts = append(parts, fmt.Sprintf("%s %s %d", swatch, st.DisplayName(), counts[st]))
	}
	return strings.Join(parts, "   ")
}
