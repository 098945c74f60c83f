package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calmly/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and an error line.
type TextInput struct {
	Label string
	Model textinput.Model
	Err   string
}

// NewTextInput creates a blurred, labelled single-line input.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Label: label, Model: ti}
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders label, input and any error.
func (t TextInput) View() string {
	return labelled(t.Label, t.Model.Focused(), t.Model.View(), t.Err)
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

func labelled(label string, focused bool, body, errText string) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		style = theme.Selected
	}
	out := style.Render(label) + "\n" + body
	if errText != "" {
		out += "\n" + theme.ErrorText.Render(errText)
	}
	return out
}
