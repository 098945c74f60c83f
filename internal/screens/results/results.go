// Package results shows the outcome of an assessment.
package results

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calmly/internal/assessment"
	"github.com/abhisek/calmly/internal/content"
	"github.com/abhisek/calmly/internal/router"
	"github.com/abhisek/calmly/internal/screen"
	"github.com/abhisek/calmly/internal/ui/components"
	"github.com/abhisek/calmly/internal/ui/layout"
	"github.com/abhisek/calmly/internal/ui/theme"
)

// ResultsScreen displays the score, category and matching encouragement.
type ResultsScreen struct {
	result    assessment.Result
	lib       *content.Library
	dashboard func() screen.Screen
	retake    func() screen.Screen
	left      bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. Continuing resets the stack to the dashboard;
// retaking replaces this screen with a fresh quiz.
func New(result assessment.Result, lib *content.Library, dashboard, retake func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{result: result, lib: lib, dashboard: dashboard, retake: retake}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Your results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "R", Description: "Retake"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.left {
		return s, nil
	}
	switch kmsg.String() {
	case "enter":
		s.left = true
		next := s.dashboard()
		return s, func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
	case "r", "R":
		s.left = true
		next := s.retake()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	r := s.result
	out := s.lib.Outcome(r.Category)
	catColor := theme.CategoryColor(string(r.Category))

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Your stress score: %d / 10", r.NormalizedScore)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, scoreGauge(r.NormalizedScore, catColor)))
	b.WriteString("\n\n")

	badge := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(catColor).
		Bold(true).
		Padding(0, 2).
		Render(r.Category.DisplayName() + " stress")
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, badge))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(out.Encouragement))
	b.WriteString("\n\n")

	b.WriteString(section("What this may mean", cw))
	for _, in := range out.Insights {
		b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render("• " + in))
		b.WriteString("\n")
	}

	if len(s.lib.NextSteps) > 0 {
		b.WriteString("\n")
		b.WriteString(section("Next steps", cw))
		for i, step := range s.lib.NextSteps {
			b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(fmt.Sprintf("%d. %s", i+1, step)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(components.ButtonRow([]string{"Continue to dashboard", "Retake"}, 0))

	return components.Panel(b.String(), width, height)
}

func section(title string, cw int) string {
	divider := strings.Repeat("─", cw)
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(title) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(divider) + "\n"
}

// scoreGauge draws ten cells, filled up to score.
func scoreGauge(score int, c color.Color) string {
	filled := lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("■ ", score))
	empty := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("□ ", assessment.MaxOptionScore-score))
	return strings.TrimSpace(filled + empty)
}
