// Package quiz implements the assessment questionnaire screen.
package quiz

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/calmly/internal/assessment"
	"github.com/abhisek/calmly/internal/router"
	"github.com/abhisek/calmly/internal/screen"
	"github.com/abhisek/calmly/internal/session"
	"github.com/abhisek/calmly/internal/ui/components"
	"github.com/abhisek/calmly/internal/ui/layout"
)

// QuizScreen walks through the questionnaire one question at a time.
type QuizScreen struct {
	engine  *assessment.Engine
	state   *session.SessionState
	logger  *zap.Logger
	results func(assessment.Result) screen.Screen

	choice components.MultiChoice
	errMsg string
	done   bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz over questions. results builds the screen that replaces
// the quiz once the last question is answered.
func New(questions []assessment.Question, state *session.SessionState, logger *zap.Logger, results func(assessment.Result) screen.Screen) (*QuizScreen, error) {
	q := &QuizScreen{
		state:   state,
		logger:  logger,
		results: results,
	}
	engine, err := assessment.NewEngine(questions, assessment.WithOnComplete(q.onComplete))
	if err != nil {
		return nil, err
	}
	q.engine = engine
	q.loadChoice()
	return q, nil
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Assessment"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "1-9/Space", Description: "Choose"},
		{Key: "Enter", Description: "Next"},
	}
	if q.engine.Index() > 0 {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Back"})
	}
	return hints
}

// onComplete runs once when the final answer is submitted.
func (q *QuizScreen) onComplete(r assessment.Result) {
	session.RecordResult(q.state, r)
	q.logger.Info("assessment complete",
		zap.String("session_id", q.state.ID),
		zap.Int("raw", r.RawTotal),
		zap.Int("score", r.NormalizedScore),
		zap.String("category", string(r.Category)))
}

// loadChoice rebuilds the option list for the current question, restoring
// any earlier answer.
func (q *QuizScreen) loadChoice() {
	cur := q.engine.Current()
	labels := make([]string, len(cur.Options))
	for i, o := range cur.Options {
		labels[i] = o.Label
	}
	q.choice = components.NewMultiChoice(labels)
	if v, ok := q.engine.Selected(q.engine.Index()); ok {
		for i, o := range cur.Options {
			if o.Value == v {
				q.choice.Cursor, q.choice.Chosen = i, i
			}
		}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || q.done {
		return q, nil
	}

	switch kmsg.String() {
	case "enter":
		return q, q.advance()
	case "left", "backspace":
		if q.engine.Back() {
			q.errMsg = ""
			q.loadChoice()
		}
		return q, nil
	}

	var chose bool
	q.choice, chose = q.choice.Update(kmsg)
	if chose {
		opt := q.engine.Current().Options[q.choice.Chosen]
		if err := q.engine.SelectAnswer(q.engine.Index(), opt.Value); err != nil {
			q.logger.Error("select answer", zap.Error(err))
			q.errMsg = err.Error()
			return q, nil
		}
		q.errMsg = ""
	}
	return q, nil
}

func (q *QuizScreen) advance() tea.Cmd {
	res, err := q.engine.Advance()
	switch {
	case errors.Is(err, assessment.ErrMissingAnswer):
		q.errMsg = "Please choose an answer before continuing."
		return nil
	case err != nil:
		q.logger.Error("advance", zap.Error(err))
		q.errMsg = err.Error()
		return nil
	}
	q.errMsg = ""
	if res == nil {
		q.loadChoice()
		return nil
	}

	q.done = true
	next := q.results(*res)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
