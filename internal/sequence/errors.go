package sequence

import "errors"

var (
	ErrNoSteps          = errors.New("sequence: no steps")
	ErrInvalidStep      = errors.New("sequence: invalid step")
	ErrAlreadyCompleted = errors.New("sequence: already completed")
	ErrNotRunning       = errors.New("sequence: not running")

	// ErrManualDisabled is returned by Complete on runners built without WithManualCompletion.
	ErrManualDisabled = errors.New("sequence: manual completion not enabled")

	// ErrCompletionGated is returned by Complete while the completion gate is closed.
	ErrCompletionGated = errors.New("sequence: completion requirements not met")
)
