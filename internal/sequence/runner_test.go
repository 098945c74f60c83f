package sequence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduler records acquisitions and lets tests fire callbacks by hand.
type fakeScheduler struct {
	fns      []func()
	active   int
	cancels  int
	interval time.Duration
}

func (f *fakeScheduler) Every(d time.Duration, fn func()) func() {
	f.interval = d
	f.fns = append(f.fns, fn)
	f.active++
	done := false
	return func() {
		f.cancels++
		if !done {
			done = true
			f.active--
		}
	}
}

// fire invokes the most recently acquired callback.
func (f *fakeScheduler) fire() {
	f.fns[len(f.fns)-1]()
}

func breathingSteps() []Step {
	cycle := Step{
		Name: "Cycle",
		Phases: []Phase{
			{Name: "inhale", Seconds: 4},
			{Name: "hold", Seconds: 7},
			{Name: "exhale", Seconds: 8},
			{Name: "rest", Seconds: 1},
		},
	}
	return Repeat(cycle, 4, "%s %d")
}

func plainSteps() []Step {
	return []Step{
		{Name: "see", Seconds: 60},
		{Name: "hear", Seconds: 45},
		{Name: "touch", Seconds: 30},
	}
}

func newRunner(t *testing.T, steps []Step, opts ...Option) *Runner {
	t.Helper()
	r, err := NewRunner(steps, opts...)
	require.NoError(t, err)
	return r
}

// runToEnd ticks until completion and returns the number of ticks consumed.
func runToEnd(t *testing.T, r *Runner) int {
	t.Helper()
	ticks := 0
	for r.Status() != StatusCompleted {
		r.Tick()
		ticks++
		require.LessOrEqual(t, ticks, r.Total(), "runner did not complete within its total duration")
	}
	return ticks
}

func TestTicksUntilCompletedEqualsTotal(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
		want  int
	}{
		{"phased", breathingSteps(), 80},
		{"plain", plainSteps(), 135},
		{"single", []Step{{Name: "meditate", Seconds: 300}}, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRunner(t, tt.steps)
			assert.Equal(t, tt.want, r.Total())
			require.NoError(t, r.Start())
			assert.Equal(t, tt.want, runToEnd(t, r))

			st := r.State()
			assert.True(t, st.Completed)
			assert.False(t, st.Running)
			assert.Equal(t, len(tt.steps), st.StepIndex)
			assert.Equal(t, 0, st.Remaining)
			assert.Equal(t, tt.want, r.Elapsed())
			assert.Equal(t, 1.0, r.Progress())
		})
	}
}

func TestPhaseAndStepAdvance(t *testing.T) {
	var kinds []EventKind
	r := newRunner(t, breathingSteps(), WithObserver(ObserverFunc(func(e Event) {
		kinds = append(kinds, e.Kind)
	})))
	require.NoError(t, r.Start())

	p, _ := r.Phase()
	assert.Equal(t, "inhale", p.Name)
	assert.Equal(t, 4, r.Remaining())

	for i := 0; i < 4; i++ {
		r.Tick()
	}
	p, _ = r.Phase()
	assert.Equal(t, "hold", p.Name)
	assert.Equal(t, 7, r.Remaining())
	assert.Equal(t, State{StepIndex: 0, PhaseIndex: 1, Remaining: 7, Running: true}, r.State())

	for i := 0; i < 7+8+1; i++ {
		r.Tick()
	}
	s, _ := r.Step()
	assert.Equal(t, "Cycle 2", s.Name)
	assert.Equal(t, State{StepIndex: 1, PhaseIndex: 0, Remaining: 4, Running: true}, r.State())

	assert.Equal(t, []EventKind{
		EventStarted, EventPhaseChanged, EventPhaseChanged, EventPhaseChanged, EventStepChanged,
	}, kinds)
}

func TestTickIgnoredUnlessRunning(t *testing.T) {
	r := newRunner(t, plainSteps())
	r.Tick()
	assert.Equal(t, 60, r.Remaining())
	assert.Equal(t, StatusIdle, r.Status())

	require.NoError(t, r.Start())
	r.Tick()
	require.NoError(t, r.Pause())
	r.Tick()
	r.Tick()
	assert.Equal(t, 59, r.Remaining())
	assert.Equal(t, StatusPaused, r.Status())
}

func TestPauseResumeKeepsElapsed(t *testing.T) {
	r := newRunner(t, breathingSteps())
	require.NoError(t, r.Start())
	for i := 0; i < 13; i++ {
		r.Tick()
	}
	require.NoError(t, r.Pause())
	paused := r.State()
	assert.Equal(t, 13, r.Elapsed())
	progress := r.Progress()

	require.NoError(t, r.Start())
	assert.Equal(t, paused.Remaining, r.Remaining())
	assert.Equal(t, progress, r.Progress())

	assert.Equal(t, 80-13, runToEnd(t, r))
}

func TestProgressMonotonic(t *testing.T) {
	r := newRunner(t, breathingSteps())
	require.NoError(t, r.Start())
	last := r.Progress()
	assert.Equal(t, 0.0, last)
	for r.Status() != StatusCompleted {
		r.Tick()
		p := r.Progress()
		assert.GreaterOrEqual(t, p, last)
		last = p
	}
}

func TestResetRestoresInitialSnapshot(t *testing.T) {
	initial := newRunner(t, breathingSteps()).State()

	tests := []struct {
		name  string
		setup func(r *Runner)
	}{
		{"idle", func(r *Runner) {}},
		{"running", func(r *Runner) {
			_ = r.Start()
			for i := 0; i < 25; i++ {
				r.Tick()
			}
		}},
		{"paused", func(r *Runner) {
			_ = r.Start()
			r.Tick()
			_ = r.Pause()
		}},
		{"completed", func(r *Runner) {
			_ = r.Start()
			for r.Status() != StatusCompleted {
				r.Tick()
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRunner(t, breathingSteps())
			tt.setup(r)
			r.Reset()
			assert.Equal(t, initial, r.State())
			assert.Equal(t, StatusIdle, r.Status())
			assert.Equal(t, 0, r.Elapsed())
		})
	}
}

func TestStartAfterCompleted(t *testing.T) {
	r := newRunner(t, []Step{{Name: "x", Seconds: 1}})
	require.NoError(t, r.Start())
	r.Tick()
	assert.ErrorIs(t, r.Start(), ErrAlreadyCompleted)

	r.Reset()
	assert.NoError(t, r.Start())
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	sched := &fakeScheduler{}
	r := newRunner(t, plainSteps(), WithScheduler(sched))
	require.NoError(t, r.Start())
	require.NoError(t, r.Start())
	assert.Len(t, sched.fns, 1)
	assert.Equal(t, 1, sched.active)
}

func TestPauseWhenNotRunning(t *testing.T) {
	r := newRunner(t, plainSteps())
	assert.ErrorIs(t, r.Pause(), ErrNotRunning)
}

func TestOnCompleteOncePerRun(t *testing.T) {
	var reasons []Reason
	r := newRunner(t, []Step{{Name: "a", Seconds: 1}, {Name: "b", Seconds: 2}},
		WithOnComplete(func(reason Reason) { reasons = append(reasons, reason) }))

	require.NoError(t, r.Start())
	runToEnd(t, r)
	r.Tick()
	r.Tick()
	require.Equal(t, []Reason{ReasonTimeout}, reasons)

	r.Reset()
	require.NoError(t, r.Start())
	runToEnd(t, r)
	assert.Equal(t, []Reason{ReasonTimeout, ReasonTimeout}, reasons)
}

func TestSchedulerReleasedOnEveryExit(t *testing.T) {
	sched := &fakeScheduler{}
	r := newRunner(t, []Step{{Name: "a", Seconds: 2}}, WithScheduler(sched))

	require.NoError(t, r.Start())
	assert.Equal(t, TickInterval, sched.interval)
	require.NoError(t, r.Pause())
	assert.Equal(t, 0, sched.active, "pause")

	require.NoError(t, r.Start())
	r.Reset()
	assert.Equal(t, 0, sched.active, "reset")

	require.NoError(t, r.Start())
	sched.fire()
	sched.fire()
	assert.Equal(t, StatusCompleted, r.Status())
	assert.Equal(t, 0, sched.active, "completion")

	r.Reset()
	require.NoError(t, r.Start())
	r.Close()
	r.Close()
	assert.Equal(t, 0, sched.active, "close")
}

func TestStaleCallbackIgnored(t *testing.T) {
	sched := &fakeScheduler{}
	r := newRunner(t, plainSteps(), WithScheduler(sched))

	require.NoError(t, r.Start())
	stale := sched.fns[0]
	require.NoError(t, r.Pause())
	require.NoError(t, r.Start())

	stale()
	assert.Equal(t, 60, r.Remaining())
	sched.fire()
	assert.Equal(t, 59, r.Remaining())
}

func TestManualCompletion(t *testing.T) {
	open := false
	var reasons []Reason
	r := newRunner(t, []Step{{Name: "journal", Seconds: 300}},
		WithManualCompletion(func() bool { return open }),
		WithOnComplete(func(reason Reason) { reasons = append(reasons, reason) }))

	require.NoError(t, r.Start())
	for i := 0; i < 42; i++ {
		r.Tick()
	}
	assert.False(t, r.CanComplete())
	assert.ErrorIs(t, r.Complete(), ErrCompletionGated)
	assert.Equal(t, StatusRunning, r.Status())

	open = true
	assert.True(t, r.CanComplete())
	require.NoError(t, r.Complete())
	assert.Equal(t, StatusCompleted, r.Status())
	assert.Equal(t, ReasonManual, r.Reason())
	assert.Equal(t, 42, r.Elapsed())
	assert.InDelta(t, 42.0/300, r.Progress(), 1e-9)
	assert.ErrorIs(t, r.Complete(), ErrAlreadyCompleted)
	assert.Equal(t, []Reason{ReasonManual}, reasons)
}

func TestManualCompletionNeedsStartedRun(t *testing.T) {
	var reasons []Reason
	r := newRunner(t, []Step{{Name: "journal", Seconds: 300}},
		WithManualCompletion(nil),
		WithOnComplete(func(reason Reason) { reasons = append(reasons, reason) }))

	assert.False(t, r.CanComplete())
	assert.ErrorIs(t, r.Complete(), ErrNotRunning)
	assert.Equal(t, StatusIdle, r.Status())
	assert.Empty(t, reasons)

	require.NoError(t, r.Start())
	for i := 0; i < 30; i++ {
		r.Tick()
	}
	require.NoError(t, r.Pause())
	assert.True(t, r.CanComplete())
	require.NoError(t, r.Complete())
	assert.Equal(t, 30, r.Elapsed())
	assert.InDelta(t, 0.1, r.Progress(), 1e-9)
	assert.Equal(t, []Reason{ReasonManual}, reasons)
}

func TestTimeoutCompletionWithManualEnabled(t *testing.T) {
	var reasons []Reason
	r := newRunner(t, []Step{{Name: "journal", Seconds: 3}},
		WithManualCompletion(func() bool { return false }),
		WithOnComplete(func(reason Reason) { reasons = append(reasons, reason) }))

	require.NoError(t, r.Start())
	runToEnd(t, r)
	assert.Equal(t, ReasonTimeout, r.Reason())
	assert.Equal(t, []Reason{ReasonTimeout}, reasons)
}

func TestCompleteWithoutManualOption(t *testing.T) {
	r := newRunner(t, plainSteps())
	assert.ErrorIs(t, r.Complete(), ErrManualDisabled)
	assert.False(t, r.CanComplete())
}

func TestNewRunnerValidation(t *testing.T) {
	_, err := NewRunner(nil)
	assert.ErrorIs(t, err, ErrNoSteps)

	_, err = NewRunner([]Step{{Name: "zero"}})
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = NewRunner([]Step{{Name: "bad", Seconds: 9, Phases: []Phase{{Name: "a", Seconds: 5}, {Name: "b", Seconds: 5}}}})
	assert.ErrorIs(t, err, ErrInvalidStep)

	r, err := NewRunner([]Step{{Name: "ok", Seconds: 10, Phases: []Phase{{Name: "tense", Seconds: 5}, {Name: "relax", Seconds: 5}}}})
	require.NoError(t, err)
	assert.Equal(t, 10, r.Total())
}

func TestToggle(t *testing.T) {
	r := newRunner(t, plainSteps())
	require.NoError(t, r.Toggle())
	assert.Equal(t, StatusRunning, r.Status())
	require.NoError(t, r.Toggle())
	assert.Equal(t, StatusPaused, r.Status())
}
