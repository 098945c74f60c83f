package assessment

import "fmt"

// Engine walks a user through a fixed question list, one answer per question.
// It is not safe for concurrent use; the owning screen drives it.
type Engine struct {
	questions  []Question
	current    int
	answers    map[string]int
	selected   map[string]string
	completed  bool
	onComplete func(Result)
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithOnComplete registers a callback fired the first time Advance finalizes.
func WithOnComplete(fn func(Result)) EngineOption {
	return func(e *Engine) {
		e.onComplete = fn
	}
}

// NewEngine creates an Engine over questions after validating them.
func NewEngine(questions []Question, opts ...EngineOption) (*Engine, error) {
	if err := ValidateQuestions(questions); err != nil {
		return nil, err
	}
	e := &Engine{
		questions: questions,
		answers:   make(map[string]int, len(questions)),
		selected:  make(map[string]string, len(questions)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Len returns the number of questions.
func (e *Engine) Len() int {
	return len(e.questions)
}

// Index returns the zero-based index of the current question.
func (e *Engine) Index() int {
	return e.current
}

// Current returns the question being asked.
func (e *Engine) Current() Question {
	return e.questions[e.current]
}

// Question returns the question at index i.
func (e *Engine) Question(i int) (Question, error) {
	if i < 0 || i >= len(e.questions) {
		return Question{}, fmt.Errorf("%w: %d", ErrInvalidQuestion, i)
	}
	return e.questions[i], nil
}

// IsLast reports whether the current question is the final one.
func (e *Engine) IsLast() bool {
	return e.current == len(e.questions)-1
}

// Completed reports whether the assessment has been finalized through Advance.
func (e *Engine) Completed() bool {
	return e.completed
}

// Progress returns the fraction of the questionnaire reached, counting the current question.
func (e *Engine) Progress() float64 {
	return float64(e.current+1) / float64(len(e.questions))
}

// HasAnswer reports whether question i has been answered.
func (e *Engine) HasAnswer(i int) bool {
	if i < 0 || i >= len(e.questions) {
		return false
	}
	_, ok := e.answers[e.questions[i].ID]
	return ok
}

// Selected returns the option value chosen for question i.
func (e *Engine) Selected(i int) (string, bool) {
	if i < 0 || i >= len(e.questions) {
		return "", false
	}
	v, ok := e.selected[e.questions[i].ID]
	return v, ok
}

// Answers returns a copy of the answer set keyed by question id.
func (e *Engine) Answers() map[string]int {
	out := make(map[string]int, len(e.answers))
	for k, v := range e.answers {
		out[k] = v
	}
	return out
}

// SelectAnswer records the option value for question i, replacing any earlier answer.
func (e *Engine) SelectAnswer(i int, value string) error {
	q, err := e.Question(i)
	if err != nil {
		return err
	}
	opt, ok := q.Option(value)
	if !ok {
		return fmt.Errorf("%w: %q for question %q", ErrInvalidOption, value, q.ID)
	}
	e.answers[q.ID] = opt.Score
	e.selected[q.ID] = opt.Value
	return nil
}

// Advance moves to the next question. On the last question it finalizes
// and returns the result; otherwise the returned result is nil.
func (e *Engine) Advance() (*Result, error) {
	if !e.HasAnswer(e.current) {
		return nil, fmt.Errorf("%w: %q", ErrMissingAnswer, e.questions[e.current].ID)
	}
	if !e.IsLast() {
		e.current++
		return nil, nil
	}

	res := e.Finalize()
	if !e.completed {
		e.completed = true
		if e.onComplete != nil {
			e.onComplete(res)
		}
	}
	return &res, nil
}

// Back returns to the previous question, keeping its answer.
func (e *Engine) Back() bool {
	if e.current == 0 || e.completed {
		return false
	}
	e.current--
	return true
}

// Finalize scores the current answer set. It has no side effects.
func (e *Engine) Finalize() Result {
	return Score(e.questions, e.answers)
}

// Reset clears all answers and returns to the first question.
func (e *Engine) Reset() {
	e.current = 0
	e.completed = false
	e.answers = make(map[string]int, len(e.questions))
	e.selected = make(map[string]string, len(e.questions))
}
