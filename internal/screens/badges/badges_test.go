package badges

import (
	"math/rand/v2"
	"strconv"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/timesmaster/internal/engine"
	"github.com/abhisek/timesmaster/internal/screen"
	"github.com/abhisek/timesmaster/internal/store"
)

func testEnv(t *testing.T) *screen.Env {
	t.Helper()
	st, err := store.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	eng, err := engine.New(
		engine.WithRand(rand.New(rand.NewPCG(2, 3))),
		engine.WithEventRepo(st.EventRepo()),
	)
	require.NoError(t, err)
	return screen.NewEnv(eng, screen.Timing{}, nil)
}

func TestBadges_TabCyclesFamilies(t *testing.T) {
	s := New(testEnv(t))
	assert.Contains(t, s.View(120, 40), "Table Masters")

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, 1, s.selected)
	assert.Contains(t, s.View(120, 40), "On Fire")

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, 0, s.selected)
}

func TestBadges_ShowsEarnedFromLog(t *testing.T) {
	env := testEnv(t)
	for range 10 {
		q := env.Engine.GenerateQuestion()
		_, err := env.Engine.SubmitAnswer(strconv.Itoa(q.Answer))
		require.NoError(t, err)
	}

	s := New(env)
	msg := s.Init()()
	loaded, ok := msg.(earnedLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	s.Update(msg)

	assert.Contains(t, s.earnedAt, "total_10")
	assert.Contains(t, s.earnedAt, "streak_10")

	s.selected = 2
	view := s.View(120, 40)
	assert.Contains(t, view, "Quick Learner")
	assert.Contains(t, view, "10/10")
	assert.Contains(t, view, "10/25")
}
