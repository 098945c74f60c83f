package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calmly/internal/ui/theme"
)

// Tabs is a horizontal tab bar.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates a tab bar with the first tab active.
func NewTabs(labels ...string) Tabs {
	return Tabs{Labels: labels}
}

// Update switches tabs on tab/shift+tab, left/right and digit keys.
// It reports whether the active tab changed.
func (t Tabs) Update(msg tea.Msg) (Tabs, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(t.Labels) == 0 {
		return t, false
	}
	prev := t.Active
	switch key := kmsg.String(); key {
	case "tab", "right", "l":
		t.Active = (t.Active + 1) % len(t.Labels)
	case "shift+tab", "left", "h":
		t.Active = (t.Active - 1 + len(t.Labels)) % len(t.Labels)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(t.Labels) {
				t.Active = i
			}
		}
	}
	return t, t.Active != prev
}

// View renders the tab bar.
func (t Tabs) View() string {
	parts := make([]string, 0, len(t.Labels))
	for i, l := range t.Labels {
		if i == t.Active {
			parts = append(parts, theme.TabActive.Render(l))
		} else {
			parts = append(parts, theme.TabInactive.Render(l))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
