package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/router"
	"github.com/abhisek/timesmaster/internal/screen"
	"github.com/abhisek/timesmaster/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	phase2End    = 1200 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// phase is how far the splash animation has got.
type phase int

const (
	phaseMascot  phase = iota // mascot alone
	phaseSparkle              // sparkles around the mascot
	phaseBanner               // banner, tagline and hint
)

// mascotFacts cycle on the mascot's screen, each shown for factTicks.
var mascotFacts = []string{"7×8", "6×7", "9×9", "3×4", "8×6"}

const factTicks = 5

// mascotFrame draws the mascot with fact on its screen; fact must be
// three columns wide.
func mascotFrame(fact string) string {
	return strings.Join([]string{
		"  ╭───────────╮",
		"  │  ┌─────┐  │",
		"  │  │ ◉ ◉ │  │",
		"  │  │  ▽  │  │",
		"  │  ├─────┤  │",
		"  │  │ " + fact + " │  │",
		"  │  └─────┘  │",
		"  ╰───────────╯",
	}, "\n")
}

var sparkleFrames = []string{"★", "✦", "✧"}

type tickMsg time.Time

// WelcomeScreen plays a short splash and hands over to the home screen on
// the first key press.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	ticks        int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that swaps itself for homeFactory().
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		w.ticks++
		return w, tick()

	case tea.KeyPressMsg:
		if w.transitioned {
			return w, nil
		}
		w.transitioned = true
		return w, router.Swap(w.homeFactory())
	}
	return w, nil
}

func (w *WelcomeScreen) phase() phase {
	switch {
	case w.elapsed >= phase2End:
		return phaseBanner
	case w.elapsed >= phase1End:
		return phaseSparkle
	default:
		return phaseMascot
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	fact := mascotFacts[(w.ticks/factTicks)%len(mascotFacts)]
	lines := strings.Split(lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotFrame(fact)), "\n")

	if w.phase() >= phaseSparkle {
		spark := sparkleFrames[w.ticks%len(sparkleFrames)]
		yellow := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(spark)
		cyan := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(spark)
		lines[0] = yellow + "  " + lines[0] + "  " + cyan
		lines[3] = cyan + "  " + lines[3] + "  " + yellow
		lines[6] = yellow + "  " + lines[6] + "  " + cyan
	}

	if w.phase() == phaseBanner {
		lines = append(lines,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Master your times tables!"),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}
