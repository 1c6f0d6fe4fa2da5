package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/achievements"
	"github.com/abhisek/timesmaster/internal/ui/theme"
)

// BadgePopup renders the "achievement unlocked" card for one badge.
func BadgePopup(a achievements.Achievement, cw int) string {
	heading := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render("★ ACHIEVEMENT UNLOCKED ★")

	icon := lipgloss.NewStyle().Render(a.Icon)

	name := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(a.Name)

	family := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(a.Family.DisplayName())

	body := lipgloss.JoinVertical(lipgloss.Center, heading, "", icon, name, family)

	w := cw - 4
	if w < 20 {
		w = 20
	}
	return theme.Badge.Width(w).Render(body)
}
