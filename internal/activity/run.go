package activity

import (
	"github.com/google/uuid"

	"github.com/abhisek/calmly/internal/content"
	"github.com/abhisek/calmly/internal/sequence"
)

// Run is one attempt at an activity: its runner plus any per-run state.
type Run struct {
	ID       string
	Activity content.Activity
	Minutes  int
	Runner   *sequence.Runner
	Journal  *Journal
}

// RunOptions configures NewRun.
type RunOptions struct {
	// Minutes sets the length of an adjustable activity; 0 uses the default.
	Minutes int
	// Runner options appended after the activity's own.
	Runner []sequence.Option
}

// NewRun builds a fresh idle run of the activity with the given id.
func (c *Catalog) NewRun(id string, opts RunOptions) (*Run, error) {
	a, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	run := &Run{
		ID:       uuid.New().String(),
		Activity: a,
	}

	steps := a.Steps
	if a.Kind == content.KindMeditation {
		m := opts.Minutes
		if m == 0 {
			m = c.DefaultMinutes(a)
		}
		if err := ValidateMinutes(a, m); err != nil {
			return nil, err
		}
		run.Minutes = m
		steps = meditationSteps(a, m)
	}

	var runnerOpts []sequence.Option
	if a.Kind == content.KindJournal {
		run.Journal = NewJournal(a.Prompts)
		runnerOpts = append(runnerOpts, sequence.WithManualCompletion(run.Journal.Filled))
	}
	runnerOpts = append(runnerOpts, opts.Runner...)

	r, err := sequence.NewRunner(steps, runnerOpts...)
	if err != nil {
		return nil, err
	}
	run.Runner = r
	return run, nil
}

// meditationSteps stretches the single meditation step to m minutes.
func meditationSteps(a content.Activity, m int) []sequence.Step {
	step := a.Steps[0]
	step.Seconds = m * 60
	step.Phases = nil
	return []sequence.Step{step}
}

// Reset returns the run to its initial state, clearing journal entries.
func (r *Run) Reset() {
	r.Runner.Reset()
	if r.Journal != nil {
		r.Journal.Reset()
	}
}

// Close releases the runner's timer.
func (r *Run) Close() {
	r.Runner.Close()
}
