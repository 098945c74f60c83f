package sequence

import "fmt"

// Phase is a timed sub-division of a step, such as inhale or tense.
type Phase struct {
	Name    string
	Seconds int
}

// Step is one named, timed unit of a sequence. A step without phases is
// treated as a single implicit phase named after the step.
type Step struct {
	Name        string
	Seconds     int
	Instruction string
	Examples    []string
	Phases      []Phase
}

// Duration returns the step length in seconds.
func (s Step) Duration() int {
	if len(s.Phases) == 0 {
		return s.Seconds
	}
	total := 0
	for _, p := range s.Phases {
		total += p.Seconds
	}
	return total
}

// phases returns the explicit phases or the implicit single phase.
func (s Step) phases() []Phase {
	if len(s.Phases) > 0 {
		return s.Phases
	}
	return []Phase{{Name: s.Name, Seconds: s.Seconds}}
}

// Validate checks that durations are positive and consistent.
func (s Step) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: step has no name", ErrInvalidStep)
	}
	if len(s.Phases) == 0 {
		if s.Seconds <= 0 {
			return fmt.Errorf("%w: step %q duration %ds", ErrInvalidStep, s.Name, s.Seconds)
		}
		return nil
	}
	for _, p := range s.Phases {
		if p.Seconds <= 0 {
			return fmt.Errorf("%w: phase %q of step %q duration %ds", ErrInvalidStep, p.Name, s.Name, p.Seconds)
		}
	}
	if s.Seconds != 0 && s.Seconds != s.Duration() {
		return fmt.Errorf("%w: step %q declares %ds but phases sum to %ds",
			ErrInvalidStep, s.Name, s.Seconds, s.Duration())
	}
	return nil
}

// TotalDuration sums the duration of every step.
func TotalDuration(steps []Step) int {
	total := 0
	for _, s := range steps {
		total += s.Duration()
	}
	return total
}

// Repeat returns n copies of step, numbering their names with format
// (which receives the step name and the 1-based cycle).
func Repeat(step Step, n int, format string) []Step {
	out := make([]Step, 0, n)
	for i := 1; i <= n; i++ {
		s := step
		if format != "" {
			s.Name = fmt.Sprintf(format, step.Name, i)
		}
		out = append(out, s)
	}
	return out
}
