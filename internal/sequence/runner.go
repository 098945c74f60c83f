package sequence

import (
	"sync"
	"time"
)

// TickInterval is the period between ticks while a runner is running.
const TickInterval = time.Second

// Runner advances through a fixed list of steps and phases, one second per Tick.
//
// A runner created without a Scheduler is driven by calling Tick directly.
// With a Scheduler, Start acquires a periodic callback that is released on
// Pause, Reset, completion and Close.
type Runner struct {
	mu sync.Mutex

	steps []Step
	total int
	state State

	started       bool
	reason        Reason
	elapsedAtStop int

	scheduler Scheduler
	cancel    func()
	gen       uint64

	onComplete func(Reason)
	observers  []Observer

	manual bool
	gate   func() bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithOnComplete registers the completion callback. It runs at most once per run.
func WithOnComplete(fn func(Reason)) Option {
	return func(r *Runner) {
		r.onComplete = fn
	}
}

// WithObserver adds an observer for runner events.
func WithObserver(o Observer) Option {
	return func(r *Runner) {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
}

// WithScheduler makes the runner tick itself while running.
func WithScheduler(s Scheduler) Option {
	return func(r *Runner) {
		r.scheduler = s
	}
}

// WithManualCompletion enables Complete, allowed only while gate returns true.
// A nil gate is always open.
func WithManualCompletion(gate func() bool) Option {
	return func(r *Runner) {
		r.manual = true
		r.gate = gate
	}
}

// NewRunner validates steps and returns an idle runner.
func NewRunner(steps []Step, opts ...Option) (*Runner, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	for _, s := range steps {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	r := &Runner{
		steps: steps,
		total: TotalDuration(steps),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.state = r.initialState()
	return r, nil
}

func (r *Runner) initialState() State {
	return State{Remaining: r.steps[0].phases()[0].Seconds}
}

// Start begins or resumes ticking. Starting a running runner is a no-op.
func (r *Runner) Start() error {
	r.mu.Lock()
	if r.state.Completed {
		r.mu.Unlock()
		return ErrAlreadyCompleted
	}
	if r.state.Running {
		r.mu.Unlock()
		return nil
	}
	r.state.Running = true
	r.started = true
	r.acquireLocked()
	events := []Event{{Kind: EventStarted, State: r.state}}
	r.mu.Unlock()

	r.dispatch(events, false)
	return nil
}

// Pause stops ticking and keeps the current position.
func (r *Runner) Pause() error {
	r.mu.Lock()
	if !r.state.Running {
		r.mu.Unlock()
		return ErrNotRunning
	}
	r.state.Running = false
	r.releaseLocked()
	events := []Event{{Kind: EventPaused, State: r.state}}
	r.mu.Unlock()

	r.dispatch(events, false)
	return nil
}

// Toggle starts an idle or paused runner and pauses a running one.
func (r *Runner) Toggle() error {
	if r.Status() == StatusRunning {
		return r.Pause()
	}
	return r.Start()
}

// Reset returns to the initial idle state from any state.
func (r *Runner) Reset() {
	r.mu.Lock()
	r.releaseLocked()
	r.state = r.initialState()
	r.started = false
	r.reason = ReasonTimeout
	r.elapsedAtStop = 0
	events := []Event{{Kind: EventReset, State: r.state}}
	r.mu.Unlock()

	r.dispatch(events, false)
}

// Tick consumes one second. It is ignored unless the runner is running.
func (r *Runner) Tick() {
	r.mu.Lock()
	events, done := r.tickLocked()
	r.mu.Unlock()

	r.dispatch(events, done)
}

// tickGen is the scheduler callback; ticks from a released callback are dropped.
func (r *Runner) tickGen(gen uint64) {
	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		return
	}
	events, done := r.tickLocked()
	r.mu.Unlock()

	r.dispatch(events, done)
}

func (r *Runner) tickLocked() ([]Event, bool) {
	if !r.state.Running {
		return nil, false
	}
	if r.state.Remaining > 0 {
		r.state.Remaining--
	}
	if r.state.Remaining > 0 {
		return nil, false
	}

	step := r.steps[r.state.StepIndex]
	if r.state.PhaseIndex+1 < len(step.phases()) {
		r.state.PhaseIndex++
		r.state.Remaining = step.phases()[r.state.PhaseIndex].Seconds
		return []Event{{Kind: EventPhaseChanged, State: r.state}}, false
	}

	if r.state.StepIndex+1 < len(r.steps) {
		r.state.StepIndex++
		r.state.PhaseIndex = 0
		r.state.Remaining = r.steps[r.state.StepIndex].phases()[0].Seconds
		return []Event{{Kind: EventStepChanged, State: r.state}}, false
	}

	r.completeLocked(ReasonTimeout)
	return []Event{{Kind: EventCompleted, State: r.state, Reason: ReasonTimeout}}, true
}

// Complete ends a started (running or paused) run early. It requires
// WithManualCompletion and an open gate.
func (r *Runner) Complete() error {
	if !r.manual {
		return ErrManualDisabled
	}
	if r.gate != nil && !r.gate() {
		return ErrCompletionGated
	}

	r.mu.Lock()
	if r.state.Completed {
		r.mu.Unlock()
		return ErrAlreadyCompleted
	}
	if !r.started {
		r.mu.Unlock()
		return ErrNotRunning
	}
	r.completeLocked(ReasonManual)
	events := []Event{{Kind: EventCompleted, State: r.state, Reason: ReasonManual}}
	r.mu.Unlock()

	r.dispatch(events, true)
	return nil
}

// CanComplete reports whether Complete would currently succeed.
func (r *Runner) CanComplete() bool {
	if !r.manual {
		return false
	}
	if st := r.Status(); st != StatusRunning && st != StatusPaused {
		return false
	}
	return r.gate == nil || r.gate()
}

func (r *Runner) completeLocked(reason Reason) {
	r.elapsedAtStop = r.elapsedLocked()
	r.releaseLocked()
	r.reason = reason
	r.started = true
	r.state = State{
		StepIndex: len(r.steps),
		Completed: true,
	}
}

// Close releases any periodic callback. It is safe to call more than once.
func (r *Runner) Close() {
	r.mu.Lock()
	r.releaseLocked()
	r.state.Running = false
	r.mu.Unlock()
}

func (r *Runner) acquireLocked() {
	if r.scheduler == nil {
		return
	}
	r.gen++
	gen := r.gen
	r.cancel = r.scheduler.Every(TickInterval, func() { r.tickGen(gen) })
}

func (r *Runner) releaseLocked() {
	r.gen++
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *Runner) dispatch(events []Event, completed bool) {
	for _, e := range events {
		for _, o := range r.observers {
			o.OnEvent(e)
		}
	}
	if completed && r.onComplete != nil {
		r.onComplete(events[len(events)-1].Reason)
	}
}

// State returns a snapshot of the runner position.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Status returns the lifecycle status.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case r.state.Completed:
		return StatusCompleted
	case r.state.Running:
		return StatusRunning
	case r.started:
		return StatusPaused
	default:
		return StatusIdle
	}
}

// Reason returns why the last run completed. Only meaningful once completed.
func (r *Runner) Reason() Reason {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reason
}

// Steps returns the configured steps.
func (r *Runner) Steps() []Step {
	return r.steps
}

// StepCount returns the number of steps.
func (r *Runner) StepCount() int {
	return len(r.steps)
}

// Step returns the current step. ok is false once completed.
func (r *Runner) Step() (Step, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.StepIndex >= len(r.steps) {
		return Step{}, false
	}
	return r.steps[r.state.StepIndex], true
}

// Phase returns the current phase, implicit for steps without phases.
func (r *Runner) Phase() (Phase, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.StepIndex >= len(r.steps) {
		return Phase{}, false
	}
	return r.steps[r.state.StepIndex].phases()[r.state.PhaseIndex], true
}

// Remaining returns the seconds left in the current phase.
func (r *Runner) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Remaining
}

// Total returns the configured length of the whole sequence in seconds.
func (r *Runner) Total() int {
	return r.total
}

// Elapsed returns the seconds consumed so far: completed steps and phases plus
// the time spent in the current phase.
func (r *Runner) Elapsed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.Completed {
		return r.elapsedAtStop
	}
	return r.elapsedLocked()
}

func (r *Runner) elapsedLocked() int {
	elapsed := 0
	for i := 0; i < r.state.StepIndex && i < len(r.steps); i++ {
		elapsed += r.steps[i].Duration()
	}
	if r.state.StepIndex >= len(r.steps) {
		return elapsed
	}
	phases := r.steps[r.state.StepIndex].phases()
	for i := 0; i < r.state.PhaseIndex; i++ {
		elapsed += phases[i].Seconds
	}
	return elapsed + phases[r.state.PhaseIndex].Seconds - r.state.Remaining
}

// Progress returns elapsed/total in [0,1]. A manual finish keeps the
// fraction reached; a timeout is always 1.
func (r *Runner) Progress() float64 {
	return float64(r.Elapsed()) / float64(r.total)
}
