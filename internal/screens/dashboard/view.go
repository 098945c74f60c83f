package dashboard

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/calmly/internal/content"
	"github.com/abhisek/calmly/internal/session"
	"github.com/abhisek/calmly/internal/ui/components"
	"github.com/abhisek/calmly/internal/ui/theme"
)

func (d *DashboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch d.tabs.Active {
	case tabAdvice:
		body = d.adviceView(cw)
	case tabActivities:
		body = d.menu.View()
	case tabStress:
		body = d.stressView(cw)
	case tabProgress:
		body = d.progressView(cw)
	}
	if d.errMsg != "" {
		body += "\n" + theme.ErrorText.Render(d.errMsg)
	}

	greeting := "Hello"
	if p := d.deps.State.Profile; p != nil {
		greeting = "Hello, " + p.Greeting()
	}

	out := lipgloss.JoinVertical(lipgloss.Left,
		theme.Body.Bold(true).Render(greeting),
		"",
		d.tabs.View(),
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw)),
		"",
		lipgloss.NewStyle().Width(cw).Render(body),
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, out)
}

// quoteOfTheDay picks a quote that changes once per calendar day.
func quoteOfTheDay(quotes []string, now time.Time) string {
	if len(quotes) == 0 {
		return ""
	}
	return quotes[now.YearDay()%len(quotes)]
}

func (d *DashboardScreen) adviceView(cw int) string {
	var b strings.Builder
	res, ok := session.LatestResult(d.deps.State)
	if !ok {
		b.WriteString(theme.Hint.Render("Take the assessment to get personal advice."))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.CategoryColor(string(res.Category))).Bold(true).
			Render(fmt.Sprintf("For %s stress (%d/10)", strings.ToLower(res.Category.DisplayName()), res.NormalizedScore)))
		b.WriteString("\n\n")
		for _, a := range d.deps.Library.AdviceFor(res.Category) {
			b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render("• " + a))
			b.WriteString("\n")
		}
	}
	if q := quoteOfTheDay(d.deps.Library.Quotes, d.now()); q != "" {
		b.WriteString("\n")
		b.WriteString(components.Card(theme.Quote.Render(q), cw-6))
	}
	return b.String()
}

func (d *DashboardScreen) stressView(cw int) string {
	var b strings.Builder
	for i, area := range d.deps.Library.StressAreas {
		arrow := "▸"
		if d.expanded[i] {
			arrow = "▾"
		}
		line := arrow + " " + area.Title
		if i == d.area {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
		if d.expanded[i] {
			b.WriteString(entries("Common causes", area.Causes, cw))
			b.WriteString(entries("What helps", area.Solutions, cw))
		}
	}
	return b.String()
}

func entries(title string, es []content.Entry, cw int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("    " + title))
	b.WriteString("\n")
	for _, e := range es {
		b.WriteString(lipgloss.NewStyle().Width(cw).PaddingLeft(6).Foreground(theme.Text).
			Render(lipgloss.NewStyle().Bold(true).Render(e.Title) + ": " + e.Description))
		b.WriteString("\n")
	}
	return b.String()
}

func (d *DashboardScreen) progressView(cw int) string {
	ids := make([]string, 0, len(d.deps.Catalog.All()))
	titles := make(map[string]string)
	for _, a := range d.deps.Catalog.All() {
		ids = append(ids, a.ID)
		titles[a.ID] = a.Title
	}
	sum := session.BuildSummary(d.deps.State, ids, d.now())

	var b strings.Builder
	if p := session.CurrentProfile(d.deps.State); p != nil {
		if age := p.Age(d.now()); age >= 0 {
			b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Hi %s (%d)", p.Greeting(), age)))
			b.WriteString("\n\n")
		}
	}
	if sum.Latest != nil {
		b.WriteString(theme.Body.Render(fmt.Sprintf("Latest score: %d/10 (%s)", sum.Latest.NormalizedScore, sum.Latest.Category.DisplayName())))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Assessments taken: %d", sum.Attempts)))
		if sum.Attempts > 1 {
			b.WriteString(theme.Body.Render("   " + changeText(sum.ScoreChange)))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Body.Render(fmt.Sprintf("Activities completed: %d   Time relaxing: %s",
		sum.ActivityCount, formatDuration(sum.RelaxingTime))))
	b.WriteString("\n")
	for _, t := range sum.Tallies {
		title := titles[t.ActivityID]
		if title == "" {
			title = t.ActivityID
		}
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if t.Runs > 0 {
			style = theme.Unselected
		}
		b.WriteString(style.Render(fmt.Sprintf("  %-28s %d", title, t.Runs)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(d.deps.Library.ProgressNote))
	b.WriteString("\n\n")
	b.WriteString(components.Button("Retake assessment (r)", true))
	return b.String()
}

func changeText(delta int) string {
	switch {
	case delta < 0:
		return fmt.Sprintf("▼ %d since your first check-in", -delta)
	case delta > 0:
		return fmt.Sprintf("▲ %d since your first check-in", delta)
	}
	return "no change since your first check-in"
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
