package assessment

import "fmt"

// MaxOptionScore is the per-question ceiling used when normalizing a raw total.
const MaxOptionScore = 10

// Option is one selectable answer of a Question.
type Option struct {
	Value string
	Label string
	Score int
}

// Question is a single assessment question with its ordered options.
type Question struct {
	ID      string
	Text    string
	Options []Option
}

// Option returns the option with the given value.
func (q Question) Option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// MaxScore returns the highest score any option of q awards.
func (q Question) MaxScore() int {
	max := 0
	for _, o := range q.Options {
		if o.Score > max {
			max = o.Score
		}
	}
	return max
}

// ValidateQuestions checks that a question list can be scored:
// ids and option values are unique, and every score lies in [0, MaxOptionScore].
// The upper bound keeps the normalized score within [0,10].
func ValidateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidQuestionSet)
	}
	ids := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return fmt.Errorf("%w: question %d has no id", ErrInvalidQuestionSet, i)
		}
		if ids[q.ID] {
			return fmt.Errorf("%w: duplicate question id %q", ErrInvalidQuestionSet, q.ID)
		}
		ids[q.ID] = true

		if len(q.Options) == 0 {
			return fmt.Errorf("%w: question %q has no options", ErrInvalidQuestionSet, q.ID)
		}
		values := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if values[o.Value] {
				return fmt.Errorf("%w: question %q has duplicate option %q", ErrInvalidQuestionSet, q.ID, o.Value)
			}
			values[o.Value] = true
			if o.Score < 0 || o.Score > MaxOptionScore {
				return fmt.Errorf("%w: option %q of %q scores %d, want 0..%d",
					ErrInvalidQuestionSet, o.Value, q.ID, o.Score, MaxOptionScore)
			}
		}
	}
	return nil
}
