package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/ui/theme"
)

// ProgressBar displays a horizontal bar towards a whole-number target.
type ProgressBar struct {
	Label   string
	Current int
	Target  int
	Width   int
	Done    bool
}

// NewProgressBar creates a progress bar. Current is capped at target.
func NewProgressBar(label string, current, target, width int) ProgressBar {
	if current > target {
		current = target
	}
	if current < 0 {
		current = 0
	}
	return ProgressBar{
		Label:   label,
		Current: current,
		Target:  target,
		Width:   width,
		Done:    target > 0 && current >= target,
	}
}

// Fraction returns the filled share in [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Target <= 0 {
		return 0
	}
	return float64(p.Current) / float64(p.Target)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	counter := fmt.Sprintf("  %d/%d", p.Current, p.Target)
	barWidth := p.Width - lipgloss.Width(result) - len(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Fraction())
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	fill := theme.Secondary
	if p.Done {
		fill = theme.Success
	}

	result += lipgloss.NewStyle().
		Background(fill).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(counter)

	return result
}
