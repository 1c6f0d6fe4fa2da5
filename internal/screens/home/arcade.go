package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/ui/theme"
)

// Block-letter title, smaller than the welcome banner so the menu fits.
const arcadeTitleFull = ` ╔╦╗╦╔╦╗╔═╗╔═╗  ╔╦╗╔═╗╔═╗╔╦╗╔═╗╦═╗
  ║ ║║║║║╣ ╚═╗  ║║║╠═╣╚═╗ ║ ║╣ ╠╦╝
  ╩ ╩╩ ╩╚═╝╚═╝  ╩ ╩╩ ╩╚═╝ ╩ ╚═╝╩╚═`

const arcadeTitleCompact = "T I M E S · M A S T E R"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

type statsBar struct {
	mastered   int
	total      int
	correct    int
	streak     int
	difficulty string
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(s statsBar, cw int, compact bool) string {
	masteredStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	correctStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			masteredStyle.Render(fmt.Sprintf("★%d/%d", s.mastered, s.total)),
			correctStyle.Render(fmt.Sprintf("✓%d", s.correct)),
			streakStyle.Render(fmt.Sprintf("🔥%d", s.streak)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s\n%s",
			masteredStyle.Render(fmt.Sprintf("★ %d/%d MASTERED", s.mastered, s.total)),
			correctStyle.Render(fmt.Sprintf("✓ %d CORRECT", s.correct)),
			streakStyle.Render(fmt.Sprintf("🔥 %d STREAK", s.streak)),
			dimStyle.Render("Difficulty: "+s.difficulty),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMascotBox renders the mascot centered at content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
