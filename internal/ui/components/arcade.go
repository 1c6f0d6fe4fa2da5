package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/ui/theme"
)

// ContentWidth is the width shared by every box inside the cabinet, so
// stacked sections line up. It leaves room for the cabinet border and
// padding and stays within 20..60 columns.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame draws the double border around a whole screen and centers
// content inside it.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard puts content in a padded rounded box cw columns wide.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

func buttonStyle(selected bool, width int) lipgloss.Style {
	s := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if selected {
		return s.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow)
	}
	return s.Foreground(theme.Text).BorderForeground(theme.Border)
}

// ArcadeButton renders a bordered button; the selected one is highlighted
// and marked with ▸.
func ArcadeButton(label string, selected bool, width int) string {
	if selected {
		label = "▸ " + label
	}
	return buttonStyle(selected, width).Render(label)
}

// MenuLine is the borderless form of ArcadeButton for short terminals.
func MenuLine(label string, selected bool) string {
	if selected {
		return lipgloss.NewStyle().
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			Bold(true).
			Render(" ▸ " + label + " ")
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
}
