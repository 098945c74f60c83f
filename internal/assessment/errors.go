package assessment

import "errors"

var (
	// ErrInvalidOption is returned when an option value does not belong to the question.
	ErrInvalidOption = errors.New("assessment: invalid option")

	// ErrMissingAnswer is returned by Advance when the current question is unanswered.
	ErrMissingAnswer = errors.New("assessment: current question has no answer")

	// ErrInvalidQuestion is returned for an out-of-range question index.
	ErrInvalidQuestion = errors.New("assessment: invalid question index")

	// ErrInvalidQuestionSet is returned when a question list cannot be scored.
	ErrInvalidQuestionSet = errors.New("assessment: invalid question set")
)
