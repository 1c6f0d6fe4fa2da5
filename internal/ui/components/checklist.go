package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/ui/theme"
)

// Checklist lets the player tick any subset of numbered options.
type Checklist struct {
	Options  []int
	Checked  map[int]bool
	Selected int
}

// NewChecklist creates a checklist with the given values pre-ticked.
func NewChecklist(options []int, checked []int) Checklist {
	c := Checklist{
		Options: options,
		Checked: make(map[int]bool, len(options)),
	}
	for _, v := range checked {
		c.Checked[v] = true
	}
	return c
}

// Update handles cursor movement and toggling with space or x.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "space", " ", "x":
		if c.Selected < len(c.Options) {
			v := c.Options[c.Selected]
			c.Checked[v] = !c.Checked[v]
		}
	}

	return c, nil
}

// Values returns the ticked options in display order.
func (c Checklist) Values() []int {
	var out []int
	for _, v := range c.Options {
		if c.Checked[v] {
			out = append(out, v)
		}
	}
	return out
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, v := range c.Options {
		box := "[ ]"
		if c.Checked[v] {
			box = "[x]"
		}
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s  %d times table", prefix, box, v)

		switch {
		case i == c.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case c.Checked[v]:
			s += lipgloss.NewStyle().Foreground(theme.Success).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
