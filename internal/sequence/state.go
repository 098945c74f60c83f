package sequence

// Status is the lifecycle position of a Runner.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Reason records what ended a run.
type Reason int

const (
	ReasonTimeout Reason = iota
	ReasonManual
)

func (r Reason) String() string {
	if r == ReasonManual {
		return "manual"
	}
	return "timeout"
}

// State is a snapshot of a runner's position.
type State struct {
	StepIndex  int
	PhaseIndex int
	Remaining  int
	Running    bool
	Completed  bool
}

// EventKind identifies a runner transition.
type EventKind int

const (
	EventStarted EventKind = iota
	EventPaused
	EventReset
	EventPhaseChanged
	EventStepChanged
	EventCompleted
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventReset:
		return "reset"
	case EventPhaseChanged:
		return "phase_changed"
	case EventStepChanged:
		return "step_changed"
	case EventCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Event is delivered to observers after a transition has been applied.
// Reason is only meaningful for EventCompleted.
type Event struct {
	Kind   EventKind
	State  State
	Reason Reason
}

// Observer receives runner events. Presentation concerns such as sound or
// animation cues hang off observers rather than the runner itself.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) OnEvent(e Event) { f(e) }
