// Package layout draws the chrome around every screen: a header bar with
// the learner's stats, the active screen, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/ui/theme"
)

// The smallest terminal the drill is usable in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// barHeight is the height of the bordered header and footer bars.
const barHeight = 3

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStats are the counters shown on the right of the header.
type HeaderStats struct {
	Mastered int
	Total    int
	Streak   int
}

// Frame is everything around the active screen.
type Frame struct {
	Title string
	Stats HeaderStats
	Hints []KeyHint
}

// Render draws the frame at width x height. body is called with the space
// left between the bars.
func (f Frame) Render(width, height int, body func(w, h int) string) string {
	if IsTooSmall(width, height) {
		return tooSmall(width, height)
	}

	header := RenderHeader(f.Title, f.Stats, width)
	footer := RenderFooter(f.Hints, width)

	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := lipgloss.NewStyle().Width(width).Height(h).Render(body(width, h))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the rows left for a screen in a terminal of
// totalHeight rows.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-2*barHeight, 0)
}

func tooSmall(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader renders the app name on the left, the screen title in the
// middle and the mastered count and streak on the right.
func RenderHeader(title string, stats HeaderStats, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  TimesMaster")
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.StatusMastered).Render(fmt.Sprintf("✓ %d/%d", stats.Mastered, stats.Total)) +
		"   " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("🔥 %d", stats.Streak))

	inner := max(width-4, 0)
	nameW, midW, rightW := lipgloss.Width(name), lipgloss.Width(mid), lipgloss.Width(right)

	gapL := max((inner-midW)/2-nameW, 1)
	gapR := max(inner-nameW-gapL-midW-rightW, 1)

	return bar(width).Render(name + strings.Repeat(" ", gapL) + mid + strings.Repeat(" ", gapR) + right)
}

// RenderFooter renders the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

// Center places block in the middle of a width x height area.
func Center(block string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
