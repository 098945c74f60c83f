package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea wraps bubbles/textarea with a label and an error line.
type TextArea struct {
	Label string
	Model textarea.Model
	Err   string
}

// NewTextArea creates a blurred, labelled multi-line input.
func NewTextArea(label, placeholder string, width, height int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 500
	ta.SetWidth(width)
	ta.SetHeight(height)
	return TextArea{Label: label, Model: ta}
}

// Focus focuses the area.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// SetWidth resizes the area.
func (t *TextArea) SetWidth(w int) {
	t.Model.SetWidth(w)
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders label, area and any error.
func (t TextArea) View() string {
	return labelled(t.Label, t.Model.Focused(), t.Model.View(), t.Err)
}

// Value returns the current text.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetValue replaces the text.
func (t *TextArea) SetValue(s string) {
	t.Model.SetValue(s)
}
