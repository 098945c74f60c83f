package activity

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/calmly/internal/content"
	"github.com/abhisek/calmly/internal/sequence"
	"github.com/abhisek/calmly/internal/ui/components"
	"github.com/abhisek/calmly/internal/ui/theme"
)

func clock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func (s *ActivityScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	r := s.run.Runner
	a := s.run.Activity

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(a.Description))
	b.WriteString("\n\n")

	if r.Status() == sequence.StatusCompleted {
		b.WriteString(s.completedView(cw))
	} else {
		b.WriteString(s.stepView(cw))
	}

	bar := components.NewProgressBar("", r.Progress(), cw)
	bar.Suffix = clock(r.Elapsed()) + " / " + clock(r.Total())
	b.WriteString("\n")
	b.WriteString(bar.View())
	b.WriteString("\n")
	if r.StepCount() > 1 {
		idx := r.State().StepIndex
		if idx >= r.StepCount() {
			idx = r.StepCount() - 1
		}
		b.WriteString(components.Dots(r.StepCount(), idx))
		b.WriteString("\n")
	}

	if len(s.entries) > 0 {
		b.WriteString("\n")
		for i := range s.entries {
			s.entries[i].SetWidth(cw - 2)
			b.WriteString(s.entries[i].View())
			b.WriteString("\n")
		}
		filled := s.run.Journal.FilledCount()
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d of %d written", filled, len(s.entries))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.statusLine())
	if s.errMsg != "" {
		b.WriteString("\n" + theme.ErrorText.Render(s.errMsg))
	}
	if s.notice != "" {
		b.WriteString("\n" + theme.Hint.Render(s.notice))
	}

	if len(a.Tips) > 0 && r.Status() == sequence.StatusIdle {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("Tips"))
		for _, t := range a.Tips {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render("• " + t))
		}
	}

	return components.Panel(lipgloss.NewStyle().Width(cw).Render(b.String()), width, height)
}

func (s *ActivityScreen) stepView(cw int) string {
	r := s.run.Runner
	step, _ := r.Step()
	phase, _ := r.Phase()
	st := r.State()

	var b strings.Builder
	header := step.Name
	if r.StepCount() > 1 {
		header = fmt.Sprintf("%s  (%d of %d)", step.Name, st.StepIndex+1, r.StepCount())
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header))
	b.WriteString("\n\n")

	big := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if len(step.Phases) > 0 {
		b.WriteString(big.Render(phase.Name + "  " + clock(r.Remaining())))
	} else {
		b.WriteString(big.Render(clock(r.Remaining())))
	}
	if s.cue != "" {
		b.WriteString("   " + theme.Quote.Render(s.cue))
	}
	b.WriteString("\n")

	if step.Instruction != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(step.Instruction))
		b.WriteString("\n")
	}
	for _, ex := range step.Examples {
		b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render("  · " + ex))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *ActivityScreen) completedView(cw int) string {
	r := s.run.Runner
	msg := "Well done. You finished " + s.run.Activity.Title + "."
	if r.Reason() == sequence.ReasonManual {
		msg = "Thank you for taking a moment for gratitude."
	}
	out := lipgloss.NewStyle().Foreground(theme.Calm).Bold(true).Width(cw).Render(msg)
	if s.cue != "" {
		out += "\n" + theme.Quote.Render(s.cue)
	}
	return out + "\n"
}

func (s *ActivityScreen) statusLine() string {
	r := s.run.Runner
	var status string
	switch r.Status() {
	case sequence.StatusIdle:
		status = "Ready. Press space to begin."
	case sequence.StatusRunning:
		status = "Running"
	case sequence.StatusPaused:
		status = "Paused. Press space to continue."
	case sequence.StatusCompleted:
		status = "Completed"
	}
	sound := "sound cues off"
	if s.sound {
		sound = "sound cues on"
	}
	line := status + "  ·  " + sound
	if s.run.Activity.Kind == content.KindMeditation {
		line += fmt.Sprintf("  ·  %d min", s.run.Minutes)
	}
	return theme.Hint.Render(line)
}
