package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/calmly/internal/activity"
	"github.com/abhisek/calmly/internal/assessment"
	"github.com/abhisek/calmly/internal/config"
	"github.com/abhisek/calmly/internal/content"
	"github.com/abhisek/calmly/internal/router"
	"github.com/abhisek/calmly/internal/screen"
	activityscreen "github.com/abhisek/calmly/internal/screens/activity"
	"github.com/abhisek/calmly/internal/screens/dashboard"
	"github.com/abhisek/calmly/internal/screens/onboarding"
	"github.com/abhisek/calmly/internal/screens/quiz"
	"github.com/abhisek/calmly/internal/screens/results"
	"github.com/abhisek/calmly/internal/screens/welcome"
	"github.com/abhisek/calmly/internal/session"
	"github.com/abhisek/calmly/internal/ui/layout"
)

// Options holds the dependencies the TUI is built from.
type Options struct {
	Config  config.Config
	Library *content.Library
	Catalog *activity.Catalog
	Logger  *zap.Logger
	// State defaults to a fresh session.
	State *session.SessionState
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

// newAppModel wires the screen flow: welcome, onboarding, quiz, results, dashboard.
func newAppModel(opts Options) AppModel {
	if opts.State == nil {
		opts.State = session.NewSessionState(time.Now())
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	m := AppModel{opts: opts}

	if opts.Config.UI.Splash {
		m.router = router.New(welcome.New(m.onboarding))
	} else {
		m.router = router.New(m.onboarding())
	}
	return m
}

func (m AppModel) onboarding() screen.Screen {
	return onboarding.New(m.opts.State, m.opts.Logger, m.quiz)
}

func (m AppModel) quiz() screen.Screen {
	q, err := quiz.New(m.opts.Library.Questions, m.opts.State, m.opts.Logger, m.results)
	if err != nil {
		// Questions were validated at load time.
		panic(fmt.Sprintf("build quiz: %v", err))
	}
	return q
}

// retake starts another assessment in the same session.
func (m AppModel) retake() screen.Screen {
	session.BeginRetake(m.opts.State)
	return m.quiz()
}

func (m AppModel) results(r assessment.Result) screen.Screen {
	return results.New(r, m.opts.Library, m.dashboard, m.retake)
}

func (m AppModel) dashboard() screen.Screen {
	return dashboard.New(dashboard.Deps{
		State:        m.opts.State,
		Library:      m.opts.Library,
		Catalog:      m.opts.Catalog,
		Logger:       m.opts.Logger,
		OpenActivity: m.activity,
		Retake:       m.retake,
	})
}

func (m AppModel) activity(id string) (screen.Screen, error) {
	return activityscreen.New(id, m.opts.Catalog, m.opts.State, m.opts.Logger, m.opts.Config.Activities.SoundCues)
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.Close()
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = m.opts.Config.UI.AltScreen

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) status() string {
	p := session.CurrentProfile(m.opts.State)
	if p == nil {
		return ""
	}
	// The old score stays hidden while an assessment is in progress.
	if session.CurrentPhase(m.opts.State) == session.PhaseAssessment {
		return layout.StatusText(p.Greeting(), 0, false)
	}
	r, ok := session.LatestResult(m.opts.State)
	return layout.StatusText(p.Greeting(), r.NormalizedScore, ok)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := newAppModel(opts)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		m.opts.Logger.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
