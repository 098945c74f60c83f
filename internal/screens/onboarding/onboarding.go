// Package onboarding implements the "About you" form shown before the first assessment.
package onboarding

import (
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/calmly/internal/profile"
	"github.com/abhisek/calmly/internal/router"
	"github.com/abhisek/calmly/internal/screen"
	"github.com/abhisek/calmly/internal/session"
	"github.com/abhisek/calmly/internal/ui/components"
	"github.com/abhisek/calmly/internal/ui/layout"
	"github.com/abhisek/calmly/internal/ui/theme"
)

type field int

const (
	fieldName field = iota
	fieldGender
	fieldBirth
	fieldSummary
	fieldSubmit
	fieldCount
)

// OnboardingScreen collects the user's profile.
type OnboardingScreen struct {
	state  *session.SessionState
	next   func() screen.Screen
	logger *zap.Logger
	now    func() time.Time

	name    components.TextInput
	birth   components.TextInput
	summary components.TextArea
	gender  int // index into profile.Genders, -1 until chosen
	focus   field

	genderErr string
	submitted bool
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates the form. next builds the screen shown after a valid submit.
func New(state *session.SessionState, logger *zap.Logger, next func() screen.Screen) *OnboardingScreen {
	return &OnboardingScreen{
		state:   state,
		next:    next,
		logger:  logger,
		now:     time.Now,
		name:    components.NewTextInput("Name", "What should we call you?", 60),
		birth:   components.NewTextInput("Date of birth", profile.DateLayout, len(profile.DateLayout)),
		summary: components.NewTextArea("What has been stressing you lately?", "A sentence or two is enough.", 56, 4),
		gender:  -1,
	}
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return o.name.Focus()
}

func (o *OnboardingScreen) Title() string {
	return "About you"
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Shift+Tab", Description: "Previous"},
	}
	switch o.focus {
	case fieldGender:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Choose"})
	case fieldSubmit:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Continue"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return o, o.forward(msg)
	}

	switch kmsg.String() {
	case "tab":
		return o, o.setFocus((o.focus + 1) % fieldCount)
	case "shift+tab":
		return o, o.setFocus((o.focus + fieldCount - 1) % fieldCount)
	}

	switch o.focus {
	case fieldName, fieldBirth:
		if kmsg.String() == "enter" {
			return o, o.setFocus(o.focus + 1)
		}
	case fieldGender:
		switch kmsg.String() {
		case "left", "h", "up", "k":
			o.moveGender(-1)
		case "right", "l", "down", "j", "space":
			o.moveGender(1)
		case "enter":
			if o.gender < 0 {
				o.moveGender(1)
			}
			return o, o.setFocus(fieldBirth)
		}
		return o, nil
	case fieldSubmit:
		if kmsg.String() == "enter" || kmsg.String() == "space" {
			return o, o.submit()
		}
		return o, nil
	}
	return o, o.forward(msg)
}

func (o *OnboardingScreen) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch o.focus {
	case fieldName:
		o.name, cmd = o.name.Update(msg)
	case fieldBirth:
		o.birth, cmd = o.birth.Update(msg)
	case fieldSummary:
		o.summary, cmd = o.summary.Update(msg)
	}
	if o.submitted {
		o.validate()
	}
	return cmd
}

func (o *OnboardingScreen) moveGender(d int) {
	n := len(profile.Genders)
	if o.gender < 0 {
		o.gender = 0
		if d < 0 {
			o.gender = n - 1
		}
	} else {
		o.gender = (o.gender + d + n) % n
	}
	if o.submitted {
		o.validate()
	}
}

func (o *OnboardingScreen) setFocus(f field) tea.Cmd {
	o.name.Blur()
	o.birth.Blur()
	o.summary.Blur()
	o.focus = f
	switch f {
	case fieldName:
		return o.name.Focus()
	case fieldBirth:
		return o.birth.Focus()
	case fieldSummary:
		return o.summary.Focus()
	}
	return nil
}

func (o *OnboardingScreen) profile() profile.Profile {
	p := profile.Profile{
		Name:          strings.TrimSpace(o.name.Value()),
		DateOfBirth:   strings.TrimSpace(o.birth.Value()),
		StressSummary: strings.TrimSpace(o.summary.Value()),
	}
	if o.gender >= 0 {
		p.Gender = profile.Genders[o.gender]
	}
	return p
}

// validate refreshes the per-field error lines and reports whether the form is valid.
func (o *OnboardingScreen) validate() bool {
	err := o.profile().Validate(o.now())
	o.name.Err = errText(err, profile.ErrNameRequired)
	o.genderErr = errText(err, profile.ErrGenderRequired)
	o.birth.Err = errText(err, profile.ErrBirthRequired, profile.ErrBirthInvalid)
	o.summary.Err = errText(err, profile.ErrSummaryRequired)
	return err == nil
}

func errText(err error, targets ...error) string {
	for _, t := range targets {
		if errors.Is(err, t) {
			return t.Error()
		}
	}
	return ""
}

func (o *OnboardingScreen) submit() tea.Cmd {
	o.submitted = true
	if !o.validate() {
		return nil
	}
	if err := session.SetProfile(o.state, o.profile(), o.now()); err != nil {
		o.logger.Warn("profile rejected", zap.Error(err))
		return nil
	}
	o.logger.Info("onboarding complete", zap.String("session_id", o.state.ID))
	next := o.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (o *OnboardingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	o.summary.SetWidth(cw - 4)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Welcome. Tell us a little about yourself."))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render("This stays on your computer and is gone when you quit."))
	b.WriteString("\n\n")
	b.WriteString(o.name.View())
	b.WriteString("\n\n")
	b.WriteString(o.genderView())
	b.WriteString("\n\n")
	b.WriteString(o.birth.View())
	b.WriteString("\n\n")
	b.WriteString(o.summary.View())
	b.WriteString("\n\n")
	b.WriteString(components.Button("Start the assessment", o.focus == fieldSubmit))

	return components.Panel(lipgloss.NewStyle().Width(cw).Render(b.String()), width, height)
}

func (o *OnboardingScreen) genderView() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	if o.focus == fieldGender {
		label = theme.Selected
	}
	opts := make([]string, len(profile.Genders))
	for i, g := range profile.Genders {
		mark := "○ "
		if i == o.gender {
			mark = "● "
		}
		style := theme.Unselected
		if i == o.gender {
			style = theme.Selected
		}
		opts[i] = style.Render(mark + g.DisplayName())
	}
	out := label.Render("Gender") + "\n" + strings.Join(opts, "    ")
	if o.genderErr != "" {
		out += "\n" + theme.ErrorText.Render(o.genderErr)
	}
	return out
}
