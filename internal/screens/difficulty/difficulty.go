// Package difficulty lets the player choose which tables to practise.
package difficulty

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/problemgen"
	"github.com/abhisek/timesmaster/internal/router"
	"github.com/abhisek/timesmaster/internal/screen"
	"github.com/abhisek/timesmaster/internal/ui/components"
	"github.com/abhisek/timesmaster/internal/ui/layout"
	"github.com/abhisek/timesmaster/internal/ui/theme"
)

var errNoTables = errors.New("pick at least one table")

// DifficultyScreen lists the presets and, for custom mode, a checklist of
// tables 1 to 9.
type DifficultyScreen struct {
	env       *screen.Env
	modes     []problemgen.Difficulty
	selected  int
	picking   bool
	checklist components.Checklist
	errMsg    string
}

var _ screen.Screen = (*DifficultyScreen)(nil)
var _ screen.KeyHintProvider = (*DifficultyScreen)(nil)
var _ screen.EscapeHandler = (*DifficultyScreen)(nil)

// New creates the picker with the engine's current mode highlighted.
func New(env *screen.Env) *DifficultyScreen {
	modes := problemgen.Difficulties()
	selected := 0
	for i, m := range modes {
		if m == env.Engine.Difficulty() {
			selected = i
		}
	}

	tables := make([]int, 0, mastery.GridMax)
	for n := mastery.GridMin; n <= mastery.GridMax; n++ {
		tables = append(tables, n)
	}

	return &DifficultyScreen{
		env:       env,
		modes:     modes,
		selected:  selected,
		checklist: components.NewChecklist(tables, env.Engine.CustomTables()),
	}
}

func (s *DifficultyScreen) Init() tea.Cmd {
	return nil
}

func (s *DifficultyScreen) HandlesEscape() bool {
	return true
}

func (s *DifficultyScreen) Title() string {
	return "Difficulty"
}

func (s *DifficultyScreen) KeyHints() []layout.KeyHint {
	if s.picking {
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DifficultyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.picking {
		return s.updateChecklist(kmsg)
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.modes)-1 {
			s.selected++
		}
	case "enter":
		mode := s.modes[s.selected]
		if mode == problemgen.DifficultyCustom {
			s.picking = true
			return s, nil
		}
		return s, s.apply(mode, nil)
	case "esc":
		return s, router.Back
	}
	return s, nil
}

func (s *DifficultyScreen) updateChecklist(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		s.picking = false
		s.errMsg = ""
		return s, nil
	case "enter":
		tables := s.checklist.Values()
		if len(tables) == 0 {
			s.errMsg = errNoTables.Error()
			return s, nil
		}
		return s, s.apply(problemgen.DifficultyCustom, tables)
	}

	s.errMsg = ""
	var cmd tea.Cmd
	s.checklist, cmd = s.checklist.Update(kmsg)
	return s, cmd
}

func (s *DifficultyScreen) apply(mode problemgen.Difficulty, tables []int) tea.Cmd {
	if err := s.env.Engine.SetDifficulty(mode, tables); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return router.Back
}

func (s *DifficultyScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	current := s.env.Engine.Difficulty()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render("Choose your challenge"))
	b.WriteString("\n\n")

	if s.picking {
		b.WriteString(s.checklist.View())
	} else {
		for i, m := range s.modes {
			label := fmt.Sprintf("%-8s %s", m.DisplayName(), m.Description())
			if m == current {
				label += "  ✓"
			}
			b.WriteString(components.ArcadeButton(label, i == s.selected, min(cw, 40)))
			b.WriteString("\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Render(s.errMsg))
	}

	return layout.Center(b.String(), width, height)
}
