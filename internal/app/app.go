package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/router"
	"github.com/abhisek/timesmaster/internal/screen"
	"github.com/abhisek/timesmaster/internal/screens/home"
	"github.com/abhisek/timesmaster/internal/screens/welcome"
	"github.com/abhisek/timesmaster/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model, starting on the welcome splash
// unless skipWelcome is set.
func newAppModel(env *screen.Env, skipWelcome bool) AppModel {
	var first screen.Screen = home.New(env)
	if !skipWelcome {
		first = welcome.New(func() screen.Screen { return home.New(env) })
	}
	return AppModel{
		env:    env,
		router: router.New(first),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Back
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	active := m.router.Active()
	frame := layout.Frame{
		Title: active.Title(),
		Stats: layout.HeaderStats{
			Mastered: m.env.Engine.MasteredCount(),
			Total:    len(mastery.GridFacts()),
			Streak:   m.env.Engine.Session().CurrentStreak,
		},
		Hints: m.footerHints(active),
	}.Render(m.width, m.height, m.router.View)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Options tune how the program starts.
type Options struct {
	SkipWelcome bool
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, env *screen.Env, opts Options) error {
	p := tea.NewProgram(newAppModel(env, opts.SkipWelcome), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
