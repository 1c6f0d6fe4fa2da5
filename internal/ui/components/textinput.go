package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesmaster/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for typing a product.
type AnswerInput struct {
	Model       textinput.Model
	NumericOnly bool
	submitted   bool
	correct     bool
}

// NewAnswerInput creates a focused answer input. Products on the grid have
// at most three digits, so the limit leaves a little room for stray keys.
func NewAnswerInput(placeholder string, numericOnly bool) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 6
	ti.Focus()

	return AnswerInput{
		Model:       ti,
		NumericOnly: numericOnly,
	}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages. Once submitted the input ignores keys until Reset.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if a.submitted {
		return a, nil
	}
	if a.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input followed by a tick or cross once submitted.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.submitted {
		if a.correct {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Submitted reports whether the input is showing a verdict.
func (a AnswerInput) Submitted() bool {
	return a.submitted
}

// Submit freezes the input with a verdict.
func (a *AnswerInput) Submit(correct bool) {
	a.submitted = true
	a.correct = correct
	a.Model.Blur()
}

// Reset clears the value and verdict for the next question.
func (a *AnswerInput) Reset() tea.Cmd {
	a.submitted = false
	a.correct = false
	a.Model.SetValue("")
	return a.Model.Focus()
}
