package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/router"
	"github.com/abhisek/timesmaster/internal/screen"
	"github.com/abhisek/timesmaster/internal/screens/badges"
	"github.com/abhisek/timesmaster/internal/screens/difficulty"
	"github.com/abhisek/timesmaster/internal/screens/drill"
	"github.com/abhisek/timesmaster/internal/screens/history"
	"github.com/abhisek/timesmaster/internal/screens/progress"
	"github.com/abhisek/timesmaster/internal/ui/components"
)

// needsPracticeAlert is how many struggling facts make the mascot worried.
const needsPracticeAlert = 3

// celebrateStreak is the streak at which the mascot celebrates.
const celebrateStreak = 5

var menuLabels = []string{"PLAY", "DIFFICULTY", "PROGRESS", "ACHIEVEMENTS", "HISTORY", "EXIT"}

// HomeScreen is the main menu. Its stats are read from the engine on every
// render so they are current after returning from a drill.
type HomeScreen struct {
	env  *screen.Env
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd { return router.Navigate(build()) }
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: push(func() screen.Screen { return drill.New(env) })},
		{Label: menuLabels[1], Action: push(func() screen.Screen { return difficulty.New(env) })},
		{Label: menuLabels[2], Action: push(func() screen.Screen { return progress.New(env) })},
		{Label: menuLabels[3], Action: push(func() screen.Screen { return badges.New(env) })},
		{Label: menuLabels[4], Action: push(func() screen.Screen { return history.New(env) })},
		{Label: menuLabels[5], Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		env:  env,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and frame gaps.
	termHeight := height + 8
	compact := termHeight < 34 || width < 100

	cw := components.ContentWidth(width)
	eng := h.env.Engine
	state := eng.Session()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant(), cw))
	}

	sections = append(sections, renderStatsBar(statsBar{
		mastered:   eng.MasteredCount(),
		total:      len(mastery.GridFacts()),
		correct:    state.TotalCorrect,
		streak:     state.CurrentStreak,
		difficulty: eng.Difficulty().DisplayName(),
	}, cw, compact))

	sections = append(sections, h.menu.View(cw, compact))

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) mascotVariant() MascotVariant {
	eng := h.env.Engine
	if eng.Session().CurrentStreak >= celebrateStreak {
		return MascotCelebrating
	}
	if eng.History().CountByStatus()[mastery.StatusNeedsPractice] >= needsPracticeAlert {
		return MascotAlert
	}
	return MascotIdle
}

func (h *HomeScreen) Title() string {
	return "Home"
}
