package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// MenuButtonWidth is the width of each button in the full menu.
const MenuButtonWidth = 22

// MenuItem is one entry of a Menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical list of actions. Up and down wrap around; Enter or
// the item's number runs it.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
	case "down", "j":
		m.Selected = (m.Selected + 1) % len(m.Items)
	case "enter":
		return m, m.run()
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Items) {
			m.Selected = n - 1
			return m, m.run()
		}
	}
	return m, nil
}

func (m Menu) run() tea.Cmd {
	if item := m.Items[m.Selected]; item.Action != nil {
		return item.Action()
	}
	return nil
}

// View renders the items as buttons centered in cw columns, or as plain
// lines when compact.
func (m Menu) View(cw int, compact bool) string {
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		if compact {
			lines[i] = MenuLine(item.Label, i == m.Selected)
		} else {
			lines[i] = ArcadeButton(item.Label, i == m.Selected, MenuButtonWidth)
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
