package difficulty

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/timesmaster/internal/engine"
	"github.com/abhisek/timesmaster/internal/problemgen"
	"github.com/abhisek/timesmaster/internal/router"
	"github.com/abhisek/timesmaster/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T) *DifficultyScreen {
	t.Helper()
	eng, err := engine.New(engine.WithRand(rand.New(rand.NewPCG(5, 6))))
	require.NoError(t, err)
	return New(screen.NewEnv(eng, screen.Timing{}, nil))
}

func isPop(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(router.PopScreenMsg)
	return ok
}

func TestDifficulty_SelectPreset(t *testing.T) {
	s := testScreen(t)
	assert.Equal(t, 0, s.selected, "mixed is highlighted by default")

	s.Update(keyPress('j'))
	s.Update(keyPress('j'))
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	assert.True(t, isPop(cmd))
	assert.Equal(t, problemgen.DifficultyMedium, s.env.Engine.Difficulty())
	assert.Equal(t, []int{3, 4, 6, 8}, s.env.Engine.OperandSet())
}

func TestDifficulty_CustomTables(t *testing.T) {
	s := testScreen(t)
	for range 4 {
		s.Update(specialKey(tea.KeyDown))
	}
	s.Update(specialKey(tea.KeyEnter))
	require.True(t, s.picking)

	// Tick 1 and 3.
	s.Update(keyPress('x'))
	s.Update(keyPress('j'))
	s.Update(keyPress('j'))
	s.Update(keyPress('x'))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.True(t, isPop(cmd))
	assert.Equal(t, problemgen.DifficultyCustom, s.env.Engine.Difficulty())
	assert.Equal(t, []int{1, 3}, s.env.Engine.CustomTables())
}

func TestDifficulty_CustomNeedsATable(t *testing.T) {
	s := testScreen(t)
	s.selected = len(s.modes) - 1
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, errNoTables.Error(), s.errMsg)
	assert.Equal(t, problemgen.DifficultyMixed, s.env.Engine.Difficulty())
	assert.Contains(t, s.View(100, 40), "pick at least one table")
}

func TestDifficulty_EscBacksOutOfChecklist(t *testing.T) {
	s := testScreen(t)
	s.selected = len(s.modes) - 1
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	assert.Nil(t, cmd)
	assert.False(t, s.picking)

	_, cmd = s.Update(specialKey(tea.KeyEscape))
	assert.True(t, isPop(cmd))
}

func TestDifficulty_ViewListsModes(t *testing.T) {
	view := testScreen(t).View(100, 40)
	for _, want := range []string{"Mixed", "Easy", "Tables 2, 5, 10", "Hard", "Custom"} {
		assert.Contains(t, view, want)
	}
}
