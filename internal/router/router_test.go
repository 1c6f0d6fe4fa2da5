package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/timesmaster/internal/screen"
)

type stubScreen struct {
	title string
	inits int
	seen  []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd { s.inits++; return nil }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.seen = append(s.seen, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func stub(title string) *stubScreen { return &stubScreen{title: title} }

func TestNavigation(t *testing.T) {
	tests := []struct {
		name      string
		steps     func(r *Router, next *stubScreen)
		wantDepth int
		wantTitle string
	}{
		{"push", func(r *Router, next *stubScreen) { r.Update(PushScreenMsg{Screen: next}) }, 2, "next"},
		{"pop at bottom", func(r *Router, _ *stubScreen) { r.Update(PopScreenMsg{}) }, 1, "home"},
		{"push then pop", func(r *Router, next *stubScreen) {
			r.Update(PushScreenMsg{Screen: next})
			r.Update(PopScreenMsg{})
		}, 1, "home"},
		{"replace bottom", func(r *Router, next *stubScreen) { r.Update(ReplaceScreenMsg{Screen: next}) }, 1, "next"},
		{"replace keeps depth", func(r *Router, next *stubScreen) {
			r.Push(stub("middle"))
			r.Replace(next)
		}, 2, "next"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(stub("home"))
			tt.steps(r, stub("next"))

			assert.Equal(t, tt.wantDepth, r.Depth())
			assert.Equal(t, tt.wantTitle, r.Active().Title())
			assert.Equal(t, tt.wantTitle, r.View(80, 24))
		})
	}
}

func TestInitOnArrivalAndReturn(t *testing.T) {
	home, next := stub("home"), stub("next")
	r := New(home)

	r.Push(next)
	assert.Equal(t, 1, next.inits)

	r.Pop()
	assert.Equal(t, 1, home.inits, "the revealed screen refreshes")

	r.Replace(next)
	assert.Equal(t, 2, next.inits)
}

func TestUpdateForwardsToActive(t *testing.T) {
	home, next := stub("home"), stub("next")
	r := New(home)
	r.Push(next)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Len(t, next.seen, 1)
	assert.Empty(t, home.seen)
}

func TestCommands(t *testing.T) {
	s := stub("next")

	push, ok := Navigate(s)().(PushScreenMsg)
	require.True(t, ok)
	assert.Same(t, s, push.Screen)

	swap, ok := Swap(s)().(ReplaceScreenMsg)
	require.True(t, ok)
	assert.Same(t, s, swap.Screen)

	assert.Equal(t, PopScreenMsg{}, Back())
}
