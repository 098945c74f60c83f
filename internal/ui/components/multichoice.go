package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/calmly/internal/ui/theme"
)

// MultiChoice is a single-answer option list. The cursor moves freely and
// the chosen option stays marked until another one is chosen.
type MultiChoice struct {
	Options []string
	Cursor  int
	Chosen  int
}

// NewMultiChoice creates a selector with nothing chosen yet.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options, Chosen: -1}
}

// Update handles keyboard navigation. Enter, space, or a digit key choose an
// option; the second return reports whether a choice was made.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter", "space":
		m.Chosen = m.Cursor
		return m, true
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.Cursor, m.Chosen = i, i
				return m, true
			}
		}
	}
	return m, false
}

// View renders the options with the cursor and the chosen marker.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		mark := "○"
		if i == m.Chosen {
			mark = "●"
		}
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %d. %s", prefix, mark, i+1, opt)
		if i == m.Cursor {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
