package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/ui/theme"
)

const bannerArt = `
 ████████╗██╗███╗   ███╗███████╗███████╗
 ╚══██╔══╝██║████╗ ████║██╔════╝██╔════╝
    ██║   ██║██╔████╔██║█████╗  ███████╗
    ██║   ██║██║╚██╔╝██║██╔══╝  ╚════██║
    ██║   ██║██║ ╚═╝ ██║███████╗███████║
    ╚═╝   ╚═╝╚═╝     ╚═╝╚══════╝╚══════╝
 ███╗   ███╗ █████╗ ███████╗████████╗███████╗██████╗
 ████╗ ████║██╔══██╗██╔════╝╚══██╔══╝██╔════╝██╔══██╗
 ██╔████╔██║███████║███████╗   ██║   █████╗  ██████╔╝
 ██║╚██╔╝██║██╔══██║╚════██║   ██║   ██╔══╝  ██╔══██╗
 ██║ ╚═╝ ██║██║  ██║███████║   ██║   ███████╗██║  ██║
 ╚═╝     ╚═╝╚═╝  ╚═╝╚══════╝   ╚═╝   ╚══════╝╚═╝  ╚═╝`

const bannerCompact = "T I M E S   M A S T E R"

// RenderBanner returns the TIMESMASTER banner. The block art is 53
// columns, narrower terminals get the spaced-out fallback.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if width < 56 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
