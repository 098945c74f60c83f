package activity

import (
	"github.com/abhisek/calmly/internal/content"
	"github.com/abhisek/calmly/internal/sequence"
)

// Cue is an audible or visual hint tied to a runner transition.
type Cue struct {
	Name string
	Text string
}

var (
	CueRise   = Cue{Name: "rise", Text: "♪ rising tone"}
	CueFall   = Cue{Name: "fall", Text: "♪ falling tone"}
	CueSteady = Cue{Name: "steady", Text: "♪ steady tone"}
	CueChime  = Cue{Name: "chime", Text: "♪ soft chime"}
	CueChord  = Cue{Name: "chord", Text: "♪ gentle chord"}
	CueBell   = Cue{Name: "bell", Text: "♪ bell"}
)

// CueFor picks the cue, if any, for an event of the given activity.
func CueFor(activityID string, e sequence.Event, phase string) (Cue, bool) {
	switch activityID {
	case "breathing":
		switch {
		case e.Kind == sequence.EventStarted || e.Kind == sequence.EventStepChanged:
			return CueRise, true
		case e.Kind == sequence.EventPhaseChanged && phase == "Exhale":
			return CueFall, true
		}
	case "muscle":
		switch {
		case e.Kind == sequence.EventStarted || e.Kind == sequence.EventStepChanged:
			return CueSteady, true
		case e.Kind == sequence.EventPhaseChanged && phase == "Relax":
			return CueFall, true
		}
	case "mindful":
		if e.Kind == sequence.EventStarted || e.Kind == sequence.EventStepChanged {
			return CueChime, true
		}
	case "gratitude":
		if e.Kind == sequence.EventCompleted {
			return CueChord, true
		}
	case "meditation", "bodyscan":
		if e.Kind == sequence.EventStarted || e.Kind == sequence.EventCompleted {
			return CueBell, true
		}
	}
	return Cue{}, false
}

// CueObserver turns runner events into cues while enabled.
type CueObserver struct {
	activityID string
	phaseOf    func(sequence.State) string
	enabled    func() bool
	play       func(Cue)
}

var _ sequence.Observer = (*CueObserver)(nil)

// NewCueObserver creates an observer for runs of a. enabled may be nil (always on).
func NewCueObserver(a content.Activity, enabled func() bool, play func(Cue)) *CueObserver {
	steps := a.Steps
	return &CueObserver{
		activityID: a.ID,
		enabled:    enabled,
		play:       play,
		phaseOf: func(s sequence.State) string {
			if s.StepIndex >= len(steps) {
				return ""
			}
			ph := steps[s.StepIndex].Phases
			if s.PhaseIndex >= len(ph) {
				return ""
			}
			return ph[s.PhaseIndex].Name
		},
	}
}

func (o *CueObserver) OnEvent(e sequence.Event) {
	if o.enabled != nil && !o.enabled() {
		return
	}
	if cue, ok := CueFor(o.activityID, e, o.phaseOf(e.State)); ok {
		o.play(cue)
	}
}
