package progress

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/problemgen"
	"github.com/abhisek/timesmaster/internal/screen"
	"github.com/abhisek/timesmaster/internal/ui/layout"
	"github.com/abhisek/timesmaster/internal/ui/theme"
)

// FactDetailScreen shows the counters behind one cell of the grid.
type FactDetailScreen struct {
	env  *screen.Env
	fact mastery.Fact
}

var _ screen.Screen = (*FactDetailScreen)(nil)
var _ screen.KeyHintProvider = (*FactDetailScreen)(nil)

func newFactDetail(env *screen.Env, f mastery.Fact) *FactDetailScreen {
	return &FactDetailScreen{env: env, fact: f}
}

func (d *FactDetailScreen) Init() tea.Cmd { return nil }
func (d *FactDetailScreen) Title() string { return fmt.Sprintf("%d × %d", d.fact.A, d.fact.B) }

func (d *FactDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *FactDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *FactDetailScreen) View(width, height int) string {
	history := d.env.Engine.History()
	st, _ := history.Lookup(d.fact.Key())
	status := history.Status(d.fact)

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(22)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.StatusColor(status)).
		Bold(true).
		Render(fmt.Sprintf("%d × %d = %d   %s", d.fact.A, d.fact.B, d.fact.Product(), status.DisplayName())))
	b.WriteString("\n\n")

	rows := []struct {
		name string
		val  string
	}{
		{"Asked", fmt.Sprint(st.TotalAsked)},
		{"Correct", fmt.Sprint(st.Correct)},
		{"Wrong", fmt.Sprint(st.Incorrect)},
		{"Didn't know", fmt.Sprint(st.DontKnow)},
		{"Correct in a row", fmt.Sprint(st.ConsecutiveCorrect)},
		{"Accuracy", fmt.Sprintf("%.0f%%", st.Accuracy()*100)},
	}
	for _, r := range rows {
		b.WriteString(label.Render(r.name))
		b.WriteString(value.Render(r.val))
		b.WriteString("\n")
	}

	if status != mastery.StatusMastered {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(masteryHint(st)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(problemgen.Explain(problemgen.NewQuestion(d.fact))))

	return layout.Center(b.String(), width, height)
}

// masteryHint says how far the fact is from mastered.
func masteryHint(st mastery.FactStats) string {
	needRun := max(mastery.MasteredConsecutive-st.ConsecutiveCorrect, 0)
	needTotal := max(mastery.MasteredCorrect-st.Correct, 0)
	switch {
	case needRun > 0 && needTotal > 0:
		return fmt.Sprintf("Get %d more right (%d in a row) to master it.", needTotal, needRun)
	case needRun > 0:
		return fmt.Sprintf("Get %d more right in a row to master it.", needRun)
	default:
		return fmt.Sprintf("Get %d more right to master it.", needTotal)
	}
}
