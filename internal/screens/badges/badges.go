// Package badges lists every achievement with progress towards it.
package badges

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/achievements"
	"github.com/abhisek/timesmaster/internal/screen"
	"github.com/abhisek/timesmaster/internal/store"
	"github.com/abhisek/timesmaster/internal/ui/components"
	"github.com/abhisek/timesmaster/internal/ui/layout"
	"github.com/abhisek/timesmaster/internal/ui/theme"
)

type earnedLoadedMsg struct {
	Records []store.AchievementEventRecord
	Err     error
}

// BadgesScreen shows one achievement family at a time.
type BadgesScreen struct {
	env      *screen.Env
	families []achievements.Family
	selected int
	earnedAt map[string]string
}

var _ screen.Screen = (*BadgesScreen)(nil)
var _ screen.KeyHintProvider = (*BadgesScreen)(nil)

// New creates a new BadgesScreen.
func New(env *screen.Env) *BadgesScreen {
	return &BadgesScreen{
		env:      env,
		families: achievements.AllFamilies(),
		earnedAt: make(map[string]string),
	}
}

func (s *BadgesScreen) Init() tea.Cmd {
	eng := s.env.Engine
	return func() tea.Msg {
		records, err := eng.AchievementLog(context.Background())
		return earnedLoadedMsg{Records: records, Err: err}
	}
}

func (s *BadgesScreen) Title() string {
	return "Achievements"
}

func (s *BadgesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch family"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case earnedLoadedMsg:
		if msg.Err != nil {
			s.env.Logger.Warn("load achievement log", "error", msg.Err)
			return s, nil
		}
		for _, rec := range msg.Records {
			s.earnedAt[rec.AchievementID] = rec.Timestamp.Format("15:04")
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "right", "l":
			s.selected = (s.selected + 1) % len(s.families)
		case "shift+tab", "left", "h":
			s.selected = (s.selected - 1 + len(s.families)) % len(s.families)
		}
	}
	return s, nil
}

func (s *BadgesScreen) View(width, height int) string {
	eng := s.env.Engine
	evaluator := eng.Achievements()
	counters := eng.Counters()
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(fmt.Sprintf("%d of %d earned", evaluator.EarnedCount(), evaluator.Total())))
	b.WriteString("\n\n")

	var tabs []string
	for i, f := range s.families {
		earned := 0
		list := achievements.ByFamily(f)
		for _, a := range list {
			if evaluator.Earned(a.ID) {
				earned++
			}
		}
		label := fmt.Sprintf("%s (%d/%d)", f.DisplayName(), earned, len(list))
		if i == s.selected {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, "     "))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw)))
	b.WriteString("\n\n")

	for _, a := range achievements.ByFamily(s.families[s.selected]) {
		b.WriteString(s.renderRow(a, evaluator, counters, cw))
		b.WriteString("\n")
	}

	return layout.Center(b.String(), width, height)
}

func (s *BadgesScreen) renderRow(a achievements.Achievement, ev *achievements.Evaluator, c achievements.Counters, cw int) string {
	earned := ev.Earned(a.ID)
	cur, target := ev.Progress(a, c)

	nameStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	mark := "  "
	if earned {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ ")
	}

	name := nameStyle.Width(24).Render(a.Icon + " " + a.Name)
	bar := components.NewProgressBar("", cur, target, max(cw-30, 10)).View()

	row := mark + name + bar
	if at, ok := s.earnedAt[a.ID]; ok {
		row += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + at)
	}
	return row
}
