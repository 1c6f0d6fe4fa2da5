package history

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/timesmaster/internal/engine"
	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/problemgen"
	"github.com/abhisek/timesmaster/internal/screen"
	"github.com/abhisek/timesmaster/internal/store"
)

type fixedSelector struct {
	fact mastery.Fact
}

func (s fixedSelector) Select(problemgen.Difficulty, []int, *mastery.History, *problemgen.RecentQueue) problemgen.Question {
	return problemgen.NewQuestion(s.fact)
}

func testEnv(t *testing.T, repo bool) *screen.Env {
	t.Helper()
	opts := []engine.Option{
		engine.WithRand(rand.New(rand.NewPCG(4, 4))),
		engine.WithSelector(fixedSelector{fact: mastery.Fact{A: 7, B: 8}}),
	}
	if repo {
		st, err := store.OpenMemory()
		require.NoError(t, err)
		t.Cleanup(func() { st.Close() })
		opts = append(opts, engine.WithEventRepo(st.EventRepo()))
	}
	eng, err := engine.New(opts...)
	require.NoError(t, err)
	return screen.NewEnv(eng, screen.Timing{}, nil)
}

func load(s *HistoryScreen) {
	s.Update(s.Init()())
}

func TestHistory_Empty(t *testing.T) {
	s := New(testEnv(t, false))
	assert.Contains(t, s.View(100, 30), "Loading")

	load(s)
	assert.Contains(t, s.View(100, 30), "No answers yet")
}

func TestHistory_ListsNewestFirst(t *testing.T) {
	env := testEnv(t, true)
	eng := env.Engine

	eng.GenerateQuestion()
	_, err := eng.SubmitAnswer("56")
	require.NoError(t, err)
	eng.GenerateQuestion()
	_, err = eng.SubmitAnswer("54")
	require.NoError(t, err)
	eng.GenerateQuestion()
	eng.SubmitDontKnow()

	s := New(env)
	load(s)
	require.Len(t, s.answers, 3)
	assert.Equal(t, store.OutcomeDontKnow, s.answers[0].Outcome)
	assert.Equal(t, store.OutcomeCorrect, s.answers[2].Outcome)

	view := s.View(100, 30)
	assert.Contains(t, view, "7 × 8 = 56")
	assert.Contains(t, view, "you: 54")
}

func TestHistory_ExpandShowsDetails(t *testing.T) {
	env := testEnv(t, true)
	env.Engine.GenerateQuestion()
	_, err := env.Engine.SubmitAnswer("54")
	require.NoError(t, err)

	s := New(env)
	load(s)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	view := s.View(100, 30)
	assert.Contains(t, view, "Learning → Needs practice")
	assert.Contains(t, view, "Difficulty: mixed")
}

func TestHistory_Navigation(t *testing.T) {
	env := testEnv(t, true)
	for range 3 {
		env.Engine.GenerateQuestion()
		env.Engine.SubmitDontKnow()
	}
	s := New(env)
	load(s)

	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	assert.Equal(t, 2, s.selected)
	s.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	assert.Equal(t, 1, s.selected)
}
