// Package activity implements the guided activity screen.
package activity

import (
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	act "github.com/abhisek/calmly/internal/activity"
	"github.com/abhisek/calmly/internal/content"
	"github.com/abhisek/calmly/internal/router"
	"github.com/abhisek/calmly/internal/screen"
	"github.com/abhisek/calmly/internal/sequence"
	"github.com/abhisek/calmly/internal/session"
	"github.com/abhisek/calmly/internal/ui/components"
	"github.com/abhisek/calmly/internal/ui/layout"
)

// tickMsg carries the generation it was scheduled under; ticks from an
// older generation are dropped.
type tickMsg struct {
	gen uint64
}

// ActivityScreen runs one activity.
type ActivityScreen struct {
	catalog *act.Catalog
	state   *session.SessionState
	logger  *zap.Logger
	now     func() time.Time

	run       *act.Run
	gen       uint64
	sound     bool
	cue       string
	entries   []components.TextArea
	focus     int // journal entry with focus, -1 for none
	notice    string
	errMsg    string
	completed bool
}

var _ screen.Screen = (*ActivityScreen)(nil)
var _ screen.KeyHintProvider = (*ActivityScreen)(nil)
var _ screen.EscapeHandler = (*ActivityScreen)(nil)
var _ router.Leaver = (*ActivityScreen)(nil)

// New opens a fresh run of the activity id. sound sets the initial cue setting.
func New(id string, catalog *act.Catalog, state *session.SessionState, logger *zap.Logger, sound bool) (*ActivityScreen, error) {
	s := &ActivityScreen{
		catalog: catalog,
		state:   state,
		logger:  logger,
		now:     time.Now,
		sound:   sound,
		focus:   -1,
	}
	if err := s.open(id, 0); err != nil {
		return nil, err
	}
	if s.run.Journal != nil {
		for _, p := range s.run.Journal.Prompts() {
			s.entries = append(s.entries, components.NewTextArea(p, "", 56, 2))
		}
	}
	return s, nil
}

// open replaces the current run with a new one.
func (s *ActivityScreen) open(id string, minutes int) error {
	a, err := s.catalog.Get(id)
	if err != nil {
		return err
	}
	run, err := s.catalog.NewRun(id, act.RunOptions{
		Minutes: minutes,
		Runner: []sequence.Option{
			sequence.WithOnComplete(s.onComplete),
			sequence.WithObserver(act.NewCueObserver(a,
				func() bool { return s.sound },
				func(c act.Cue) { s.cue = c.Text })),
		},
	})
	if err != nil {
		return err
	}
	if s.run != nil {
		s.run.Close()
	}
	s.run = run
	s.completed = false
	s.logger.Debug("activity opened",
		zap.String("activity", id),
		zap.String("run_id", run.ID),
		zap.Int("total_seconds", run.Runner.Total()))
	return nil
}

func (s *ActivityScreen) onComplete(reason sequence.Reason) {
	s.completed = true
	s.gen++
	elapsed := time.Duration(s.run.Runner.Elapsed()) * time.Second
	session.RecordActivity(s.state, session.ActivityRecord{
		ActivityID: s.run.Activity.ID,
		RunID:      s.run.ID,
		Reason:     reason,
		Elapsed:    elapsed,
		FinishedAt: s.now(),
	})
	s.logger.Info("activity completed",
		zap.String("session_id", s.state.ID),
		zap.String("activity", s.run.Activity.ID),
		zap.String("run_id", s.run.ID),
		zap.Stringer("reason", reason),
		zap.Duration("elapsed", elapsed))
}

func (s *ActivityScreen) Init() tea.Cmd {
	return nil
}

func (s *ActivityScreen) Title() string {
	return s.run.Activity.Title
}

// HandlesEscape reports whether Esc should leave a journal field rather than the screen.
func (s *ActivityScreen) HandlesEscape() bool {
	return s.focus >= 0
}

// Leave stops the timer when the screen is popped.
func (s *ActivityScreen) Leave() {
	s.gen++
	if !s.completed {
		s.logger.Debug("activity left before completion",
			zap.String("activity", s.run.Activity.ID),
			zap.String("run_id", s.run.ID),
			zap.Int("elapsed_seconds", s.run.Runner.Elapsed()))
	}
	s.run.Close()
}

func (s *ActivityScreen) KeyHints() []layout.KeyHint {
	if s.focus >= 0 {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next entry"},
			{Key: "Ctrl+S", Description: "Finish"},
			{Key: "Esc", Description: "Done typing"},
		}
	}
	hints := []layout.KeyHint{{Key: "Space", Description: "Start/Pause"}, {Key: "R", Description: "Reset"}}
	if s.run.Activity.Kind == content.KindMeditation {
		hints = append(hints, layout.KeyHint{Key: "+/-", Description: "Minutes"})
	}
	if s.run.Journal != nil && s.started() {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Write"}, layout.KeyHint{Key: "Ctrl+S", Description: "Finish"})
	}
	return append(hints,
		layout.KeyHint{Key: "M", Description: "Sound cues"},
		layout.KeyHint{Key: "Esc", Description: "Back"})
}

func tick(gen uint64) tea.Cmd {
	return tea.Tick(sequence.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (s *ActivityScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s, s.handleTick(msg)
	case tea.KeyPressMsg:
		if s.focus >= 0 {
			return s, s.handleJournalKey(msg)
		}
		return s, s.handleKey(msg)
	}
	if s.focus >= 0 {
		var cmd tea.Cmd
		s.entries[s.focus], cmd = s.entries[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ActivityScreen) handleTick(msg tickMsg) tea.Cmd {
	if msg.gen != s.gen || s.run.Runner.Status() != sequence.StatusRunning {
		return nil
	}
	s.run.Runner.Tick()
	if s.run.Runner.Status() != sequence.StatusRunning {
		return nil
	}
	return tick(s.gen)
}

func (s *ActivityScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	s.errMsg = ""
	switch msg.String() {
	case "space":
		return s.toggle()
	case "r", "R":
		s.reset()
	case "m", "M":
		s.sound = !s.sound
		if !s.sound {
			s.cue = ""
		}
	case "+", "=":
		s.adjustMinutes(1)
	case "-", "_":
		s.adjustMinutes(-1)
	case "tab":
		if len(s.entries) == 0 || s.completed {
			break
		}
		if !s.started() {
			s.notice = "Press space to start the timer, then write."
			break
		}
		return s.focusEntry(0)
	case "ctrl+s":
		s.complete()
	}
	return nil
}

func (s *ActivityScreen) handleJournalKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.blurEntries()
		return nil
	case "tab":
		return s.focusEntry((s.focus + 1) % len(s.entries))
	case "shift+tab":
		return s.focusEntry((s.focus + len(s.entries) - 1) % len(s.entries))
	case "ctrl+s":
		s.complete()
		return nil
	}
	var cmd tea.Cmd
	s.entries[s.focus], cmd = s.entries[s.focus].Update(msg)
	if err := s.run.Journal.Set(s.focus, s.entries[s.focus].Value()); err != nil {
		s.logger.Error("journal entry", zap.Error(err))
	}
	return cmd
}

func (s *ActivityScreen) focusEntry(i int) tea.Cmd {
	s.blurEntries()
	s.focus = i
	return s.entries[i].Focus()
}

func (s *ActivityScreen) blurEntries() {
	for i := range s.entries {
		s.entries[i].Blur()
	}
	s.focus = -1
}

func (s *ActivityScreen) toggle() tea.Cmd {
	r := s.run.Runner
	switch r.Status() {
	case sequence.StatusCompleted:
		s.notice = "Press r to do it again."
		return nil
	case sequence.StatusRunning:
		if err := r.Pause(); err != nil {
			s.logger.Error("pause", zap.Error(err))
		}
		s.gen++
		return nil
	default:
		if err := r.Start(); err != nil {
			s.logger.Error("start", zap.Error(err))
			s.errMsg = err.Error()
			return nil
		}
		s.notice = ""
		s.gen++
		return tick(s.gen)
	}
}

func (s *ActivityScreen) reset() {
	s.gen++
	s.run.Reset()
	s.completed = false
	s.cue = ""
	s.notice = ""
	for i := range s.entries {
		s.entries[i].SetValue("")
	}
	s.blurEntries()
}

func (s *ActivityScreen) adjustMinutes(d int) {
	a := s.run.Activity
	if a.Kind != content.KindMeditation {
		return
	}
	if s.run.Runner.Status() != sequence.StatusIdle {
		s.notice = "Reset before changing the length."
		return
	}
	m := s.run.Minutes + d
	if err := act.ValidateMinutes(a, m); err != nil {
		return
	}
	s.gen++
	if err := s.open(a.ID, m); err != nil {
		s.logger.Error("resize meditation", zap.Error(err))
		s.errMsg = err.Error()
	}
}

// started reports whether the timer is running or paused.
func (s *ActivityScreen) started() bool {
	st := s.run.Runner.Status()
	return st == sequence.StatusRunning || st == sequence.StatusPaused
}

func (s *ActivityScreen) complete() {
	if s.run.Journal == nil {
		return
	}
	err := s.run.Runner.Complete()
	switch {
	case err == nil:
		s.blurEntries()
	case errors.Is(err, sequence.ErrCompletionGated):
		s.errMsg = "Write something for every prompt before finishing."
	case errors.Is(err, sequence.ErrNotRunning):
		s.notice = "Press space to start the timer first."
	case errors.Is(err, sequence.ErrAlreadyCompleted):
		s.notice = "Already finished. Press r to write again."
	default:
		s.logger.Error("complete", zap.Error(err))
		s.errMsg = err.Error()
	}
}
