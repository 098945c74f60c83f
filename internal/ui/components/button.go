package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calmly/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all panels so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 24 {
		w = 24
	}
	return w
}

// Panel centers content in the given area.
func Panel(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Render(content)
}

// Button renders a one-line button, highlighted when selected.
func Button(label string, selected bool) string {
	if selected {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow renders buttons side by side with the selected one highlighted.
func ButtonRow(labels []string, selected int) string {
	parts := make([]string, 0, len(labels)*2)
	for i, l := range labels {
		if i > 0 {
			parts = append(parts, "  ")
		}
		parts = append(parts, Button(l, i == selected))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
