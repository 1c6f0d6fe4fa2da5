package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timesmaster/internal/achievements"
)

func keyPress(key rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: key, Text: string(key)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenu_Wraps(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Play"}, {Label: "Progress"}, {Label: "Exit"}})
	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
}

func TestMenu_NumberRunsItem(t *testing.T) {
	ran := ""
	action := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			ran = label
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "Play", Action: action("Play")},
		{Label: "Exit", Action: action("Exit")},
	})

	m, _ = m.Update(keyPress('2'))
	if ran != "Exit" || m.Selected != 1 {
		t.Errorf("ran %q with Selected = %d, want Exit and 1", ran, m.Selected)
	}

	ran = ""
	m, _ = m.Update(keyPress('9'))
	if ran != "" {
		t.Errorf("out of range shortcut ran %q", ran)
	}
}

func TestMenu_View(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "PLAY"}, {Label: "EXIT"}})
	for _, compact := range []bool{false, true} {
		out := m.View(40, compact)
		if !strings.Contains(out, "▸ PLAY") || !strings.Contains(out, "EXIT") {
			t.Errorf("compact=%v view:\n%s", compact, out)
		}
	}
}

func TestChecklist_Toggle(t *testing.T) {
	c := NewChecklist([]int{1, 2, 3}, []int{2})
	c, _ = c.Update(keyPress('x'))
	c, _ = c.Update(keyPress('j'))
	c, _ = c.Update(keyPress('x'))

	got := c.Values()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Values() = %v, want [1]", got)
	}
}

func TestAnswerInput_NumericOnlyDropsLetters(t *testing.T) {
	a := NewAnswerInput("?", true)
	a, _ = a.Update(keyPress('4'))
	a, _ = a.Update(keyPress('z'))
	a, _ = a.Update(keyPress('2'))
	if a.Value() != "42" {
		t.Errorf("Value() = %q, want %q", a.Value(), "42")
	}
}

func TestAnswerInput_SubmitFreezes(t *testing.T) {
	a := NewAnswerInput("?", false)
	a, _ = a.Update(keyPress('7'))
	a.Submit(true)
	a, _ = a.Update(keyPress('1'))
	if a.Value() != "7" {
		t.Errorf("Value() = %q after submit, want %q", a.Value(), "7")
	}
	if !strings.Contains(a.View(), "✓") {
		t.Error("submitted correct input should show a tick")
	}
	a.Reset()
	if a.Value() != "" || a.Submitted() {
		t.Error("Reset should clear value and verdict")
	}
}

func TestProgressBar_CapsAtTarget(t *testing.T) {
	p := NewProgressBar("", 12, 10, 30)
	if p.Current != 10 || !p.Done {
		t.Errorf("got current=%d done=%v, want 10 true", p.Current, p.Done)
	}
	if !strings.Contains(p.View(), "10/10") {
		t.Errorf("view missing counter: %q", p.View())
	}
}

func TestBadgePopup(t *testing.T) {
	a, ok := achievements.Lookup("streak_5")
	if !ok {
		t.Fatal("streak_5 missing from catalog")
	}
	out := BadgePopup(a, 50)
	if !strings.Contains(out, a.Name) {
		t.Errorf("popup missing name %q:\n%s", a.Name, out)
	}
}
