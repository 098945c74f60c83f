package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/muesli/cancelreader"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/calmly/internal/activity"
	"github.com/abhisek/calmly/internal/sequence"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "List or run guided activities",
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cat, err := loadCatalog()
		if err != nil {
			return err
		}
		listActivities(cmd.OutOrStdout(), cat)
		return nil
	},
}

var activityRunCmd = &cobra.Command{
	Use:   "run <id>",
	Short: "Run an activity in the terminal without the full-screen UI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cat, err := loadCatalog()
		if err != nil {
			return err
		}
		minutes, _ := cmd.Flags().GetInt("minutes")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sched := sequence.NewTickerScheduler()
		defer sched.Wait()

		return runActivity(ctx, activityRun{
			in:        cmd.InOrStdin(),
			out:       cmd.OutOrStdout(),
			catalog:   cat,
			id:        args[0],
			minutes:   minutes,
			sound:     cfg.Activities.SoundCues,
			scheduler: sched,
		})
	},
}

func init() {
	activityRunCmd.Flags().Int("minutes", 0, "Length in minutes for adjustable activities")
	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityRunCmd)
}

func listActivities(out io.Writer, cat *activity.Catalog) {
	for _, a := range cat.All() {
		fmt.Fprintf(out, "%-12s %-32s %s\n", a.ID, a.Title, a.DurationLabel)
	}
}

type activityRun struct {
	in        io.Reader
	out       io.Writer
	catalog   *activity.Catalog
	id        string
	minutes   int
	sound     bool
	scheduler sequence.Scheduler
}

// runActivity drives one run to completion or until ctx is cancelled.
// Journal activities read one entry per prompt from in.
func runActivity(ctx context.Context, ar activityRun) error {
	a, err := ar.catalog.Get(ar.id)
	if err != nil {
		return err
	}
	if ar.minutes != 0 {
		if err := activity.ValidateMinutes(a, ar.minutes); err != nil {
			return err
		}
	}

	p := &transitionPrinter{out: ar.out, steps: a.Steps}
	done := make(chan sequence.Reason, 1)

	opts := []sequence.Option{
		sequence.WithScheduler(ar.scheduler),
		sequence.WithObserver(p),
		sequence.WithOnComplete(func(reason sequence.Reason) { done <- reason }),
	}
	if ar.sound {
		opts = append(opts, sequence.WithObserver(activity.NewCueObserver(a, nil, func(c activity.Cue) {
			p.printf("  %s\n", c.Text)
		})))
	}

	run, err := ar.catalog.NewRun(ar.id, activity.RunOptions{Minutes: ar.minutes, Runner: opts})
	if err != nil {
		return err
	}
	defer run.Close()
	p.steps = run.Runner.Steps()

	log := logger.With(zap.String("activity", a.ID), zap.String("run_id", run.ID))
	log.Info("activity started", zap.Int("minutes", run.Minutes))

	p.printf("%s (%s)\n%s\n", a.Title, a.DurationLabel, a.Description)
	if err := run.Runner.Start(); err != nil {
		return err
	}
	if run.Journal != nil {
		jctx, stopJournal := context.WithCancel(ctx)
		in, stopInput := cancelableInput(ar.in)
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			ar.readJournal(jctx, in, run, p)
		}()
		defer func() {
			stopJournal()
			stopInput(wg.Wait)
		}()
	}

	select {
	case reason := <-done:
		p.printf("Done (%s) after %ds.\n", reason, run.Runner.Elapsed())
		log.Info("activity completed", zap.Stringer("reason", reason))
		return nil
	case <-ctx.Done():
		p.printf("Stopped after %ds.\n", run.Runner.Elapsed())
		log.Info("activity cancelled", zap.Int("elapsed", run.Runner.Elapsed()))
		return nil
	}
}

// cancelableInput wraps in so a blocked read can be interrupted. stop
// cancels pending reads, then calls wait and releases the reader. Inputs that
// cannot be polled, such as regular files, never block and are read as is.
func cancelableInput(in io.Reader) (io.Reader, func(wait func())) {
	cr, err := cancelreader.NewReader(in)
	if err != nil {
		return in, func(func()) {}
	}
	return cr, func(wait func()) {
		if cr.Cancel() {
			wait()
			_ = cr.Close()
		}
	}
}

// readJournal fills each prompt from a line of input and completes the run
// once every entry is written. It stops at the first prompt after ctx ends.
func (ar activityRun) readJournal(ctx context.Context, in io.Reader, run *activity.Run, p *transitionPrinter) {
	scanner := bufio.NewScanner(in)
	for i, prompt := range run.Journal.Prompts() {
		if ctx.Err() != nil {
			return
		}
		p.printf("%d. %s\n> ", i+1, prompt)
		if !scanner.Scan() {
			return
		}
		if err := run.Journal.Set(i, scanner.Text()); err != nil {
			return
		}
	}
	if err := run.Runner.Complete(); err != nil {
		p.printf("%v\n", err)
	}
}

// transitionPrinter writes step and phase changes as they happen. Events
// arrive from the scheduler goroutine, so writes are serialized.
type transitionPrinter struct {
	mu    sync.Mutex
	out   io.Writer
	steps []sequence.Step
}

func (p *transitionPrinter) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}

func (p *transitionPrinter) OnEvent(e sequence.Event) {
	if e.State.StepIndex >= len(p.steps) {
		return
	}
	step := p.steps[e.State.StepIndex]
	switch e.Kind {
	case sequence.EventStarted, sequence.EventStepChanged:
		p.printf("\n%s\n", step.Name)
		if step.Instruction != "" {
			p.printf("  %s\n", step.Instruction)
		}
		p.printPhase(step, e.State)
	case sequence.EventPhaseChanged:
		p.printPhase(step, e.State)
	}
}

func (p *transitionPrinter) printPhase(step sequence.Step, s sequence.State) {
	if s.PhaseIndex < len(step.Phases) {
		p.printf("  %s (%ds)\n", step.Phases[s.PhaseIndex].Name, s.Remaining)
	}
}

var _ sequence.Observer = (*transitionPrinter)(nil)
