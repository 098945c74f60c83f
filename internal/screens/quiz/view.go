package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/calmly/internal/ui/components"
	"github.com/abhisek/calmly/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	cur := q.engine.Current()

	var b strings.Builder

	info := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("Question %d of %d", q.engine.Index()+1, q.engine.Len()))
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", q.engine.Progress(), cw).View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(cur.Text))
	b.WriteString("\n\n")
	b.WriteString(q.choice.View())

	b.WriteString("\n")
	if q.errMsg != "" {
		b.WriteString(theme.ErrorText.Render(q.errMsg))
	} else {
		label := "Next"
		if q.engine.IsLast() {
			label = "See my results"
		}
		b.WriteString(components.Button(label, q.choice.Chosen >= 0))
	}

	return components.Panel(lipgloss.NewStyle().Width(cw).Render(b.String()), width, height)
}
