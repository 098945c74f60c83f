// Package dashboard is the home screen after the first assessment.
package dashboard

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/calmly/internal/activity"
	"github.com/abhisek/calmly/internal/content"
	"github.com/abhisek/calmly/internal/router"
	"github.com/abhisek/calmly/internal/screen"
	"github.com/abhisek/calmly/internal/session"
	"github.com/abhisek/calmly/internal/ui/components"
	"github.com/abhisek/calmly/internal/ui/layout"
)

const (
	tabAdvice = iota
	tabActivities
	tabStress
	tabProgress
)

// Deps are the collaborators the dashboard navigates with.
type Deps struct {
	State   *session.SessionState
	Library *content.Library
	Catalog *activity.Catalog
	Logger  *zap.Logger
	// OpenActivity builds the runner screen for an activity id.
	OpenActivity func(id string) (screen.Screen, error)
	// Retake builds a fresh quiz.
	Retake func() screen.Screen
}

// DashboardScreen shows advice, activities, stress education and progress in tabs.
type DashboardScreen struct {
	deps Deps
	now  func() time.Time

	tabs     components.Tabs
	menu     components.Menu
	area     int
	expanded map[int]bool
	errMsg   string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard.
func New(deps Deps) *DashboardScreen {
	d := &DashboardScreen{
		deps:     deps,
		now:      time.Now,
		tabs:     components.NewTabs("Advice", "Activities", "Understand Stress", "Progress"),
		expanded: make(map[int]bool),
	}
	var items []components.MenuItem
	for _, a := range deps.Catalog.All() {
		id := a.ID
		items = append(items, components.MenuItem{
			Label:  a.Title,
			Detail: a.DurationLabel + " · " + a.Description,
			Action: func() tea.Cmd { return d.open(id) },
		})
	}
	d.menu = components.NewMenu(items)
	return d
}

func (d *DashboardScreen) Init() tea.Cmd {
	session.EnterDashboard(d.deps.State)
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab/←→", Description: "Switch tab"}}
	switch d.tabs.Active {
	case tabActivities:
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Choose"}, layout.KeyHint{Key: "Enter", Description: "Start"})
	case tabStress:
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Choose"}, layout.KeyHint{Key: "Enter", Description: "Expand"})
	case tabProgress:
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retake assessment"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}

	var changed bool
	if d.tabs, changed = d.tabs.Update(kmsg); changed {
		d.errMsg = ""
		return d, nil
	}

	switch d.tabs.Active {
	case tabActivities:
		var cmd tea.Cmd
		d.menu, cmd = d.menu.Update(kmsg)
		return d, cmd
	case tabStress:
		n := len(d.deps.Library.StressAreas)
		switch kmsg.String() {
		case "up", "k":
			if d.area > 0 {
				d.area--
			}
		case "down", "j":
			if d.area < n-1 {
				d.area++
			}
		case "enter", "space":
			d.expanded[d.area] = !d.expanded[d.area]
		}
	case tabProgress:
		if kmsg.String() == "r" || kmsg.String() == "R" {
			next := d.deps.Retake()
			d.deps.Logger.Info("retake requested", zap.String("session_id", d.deps.State.ID))
			return d, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}
	return d, nil
}

func (d *DashboardScreen) open(id string) tea.Cmd {
	s, err := d.deps.OpenActivity(id)
	if err != nil {
		d.deps.Logger.Error("open activity", zap.String("activity", id), zap.Error(err))
		d.errMsg = err.Error()
		return nil
	}
	d.errMsg = ""
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}
