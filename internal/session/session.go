package session

import (
	"fmt"
	"time"

	"github.com/abhisek/calmly/internal/assessment"
	"github.com/abhisek/calmly/internal/profile"
)

// SetProfile validates and stores the onboarding profile, moving on to the assessment.
func SetProfile(state *SessionState, p profile.Profile, now time.Time) error {
	if err := p.Validate(now); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	state.Profile = &p
	state.Phase = PhaseAssessment
	return nil
}

// RecordResult appends a finished assessment.
func RecordResult(state *SessionState, r assessment.Result) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.Results = append(state.Results, r)
	state.Phase = PhaseResults
}

// BeginRetake moves back to the assessment while keeping earlier results.
func BeginRetake(state *SessionState) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.Phase = PhaseAssessment
}

// EnterDashboard marks the dashboard as the current phase.
func EnterDashboard(state *SessionState) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.Phase = PhaseDashboard
}

// RecordActivity appends a finished activity run.
func RecordActivity(state *SessionState, rec ActivityRecord) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.Activities = append(state.Activities, rec)
}

// LatestResult returns the most recent assessment result.
func LatestResult(state *SessionState) (assessment.Result, bool) {
	state.mu.Lock()
	defer state.mu.Unlock()
	if len(state.Results) == 0 {
		return assessment.Result{}, false
	}
	return state.Results[len(state.Results)-1], true
}

// CurrentPhase returns the session phase.
func CurrentPhase(state *SessionState) SessionPhase {
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.Phase
}

// CurrentProfile returns the onboarding profile, or nil before onboarding.
func CurrentProfile(state *SessionState) *profile.Profile {
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.Profile
}
