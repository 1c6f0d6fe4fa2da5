package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/session"
	"github.com/abhisek/timesmaster/internal/ui/components"
	"github.com/abhisek/timesmaster/internal/ui/theme"
)

var confetti = []string{"✦", "★", "✧", "✺", "✹", "✶"}

var confettiColors = []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#F7DC6F", "#BB8FCE"}

func (d *DrillScreen) View(width, height int) string {
	eng := d.env.Engine
	state := eng.Session()
	cw := components.ContentWidth(width)

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}

	var b strings.Builder
	b.WriteString(d.renderInfoLine(state, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(center(theme.Streak.Render(session.StreakMessage(state.CurrentStreak))))
	b.WriteString("\n\n")

	q, ok := eng.Current()
	if !ok {
		b.WriteString(center(theme.Hint.Render("Getting a question ready...")))
		return b.String()
	}

	b.WriteString(center(components.ArcadeCard(theme.Question.Render(q.Text()), min(cw, 30))))
	b.WriteString("\n\n")
	b.WriteString(center("Answer: " + d.input.View()))
	b.WriteString("\n\n")

	switch {
	case d.warning != "":
		b.WriteString(center(theme.Warning.Render(d.warning)))
	case d.result != nil:
		b.WriteString(d.renderFeedback(width))
	}

	if a, ok := eng.Badges().Current(); ok {
		b.WriteString("\n\n")
		b.WriteString(center(components.BadgePopup(a, min(cw, 40))))
	}

	return b.String()
}

func (d *DrillScreen) renderInfoLine(state session.State, width int) string {
	eng := d.env.Engine

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + eng.Difficulty().DisplayName())

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  %s %d  %s %d%%",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			state.TotalCorrect,
			lipgloss.NewStyle().Foreground(theme.Error).Render("✗"),
			state.TotalIncorrect,
			lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render("≈"),
			int(state.Accuracy()*100),
		))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (d *DrillScreen) renderFeedback(width int) string {
	res := d.result
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}

	var lines []string
	switch res.Outcome {
	case session.OutcomeCorrect:
		lines = append(lines, center(renderConfetti(d.seq)))
		lines = append(lines, center(theme.Correct.Render(res.Feedback)))
	case session.OutcomeIncorrect:
		lines = append(lines, center(theme.Incorrect.Render(res.Feedback)))
		if res.Diagnosis != nil && res.Diagnosis.Hint != "" {
			lines = append(lines, center(theme.Hint.Render(res.Diagnosis.Hint)))
		}
	default:
		lines = append(lines, center(theme.Warning.Render(res.Feedback)))
		if res.Explanation != "" {
			exp := lipgloss.NewStyle().Foreground(theme.Text).Render(res.Explanation)
			lines = append(lines, "", center(exp))
		}
	}

	if ch := res.StatusChange; ch != nil && ch.To == mastery.StatusMastered {
		msg := fmt.Sprintf("%d × %d mastered!", res.Question.Operand1, res.Question.Operand2)
		lines = append(lines, "", center(lipgloss.NewStyle().
			Foreground(theme.StatusColor(ch.To)).
			Bold(true).
			Render(msg)))
	}

	return strings.Join(lines, "\n")
}

// renderConfetti draws a short burst of coloured sparks. seed varies the
// pattern between questions.
func renderConfetti(seed int) string {
	parts := make([]string, 0, 9)
	for i := 0; i < 9; i++ {
		sym := confetti[(seed+i)%len(confetti)]
		col := lipgloss.Color(confettiColors[(seed*7+i)%len(confettiColors)])
		parts = append(parts, lipgloss.NewStyle().Foreground(col).Render(sym))
	}
	return strings.Join(parts, " ")
}
