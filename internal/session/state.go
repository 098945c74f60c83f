package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/calmly/internal/assessment"
	"github.com/abhisek/calmly/internal/profile"
	"github.com/abhisek/calmly/internal/sequence"
)

// SessionPhase represents where the user is in the app flow.
type SessionPhase int

const (
	PhaseOnboarding SessionPhase = iota // Collecting the profile
	PhaseAssessment                     // Answering the questionnaire
	PhaseResults                        // Looking at the latest result
	PhaseDashboard                      // Browsing advice and activities
)

// ActivityRecord is one finished activity run.
type ActivityRecord struct {
	ActivityID string
	RunID      string
	Reason     sequence.Reason
	Elapsed    time.Duration
	FinishedAt time.Time
}

// SessionState tracks everything the user did since the app started.
// Nothing in it outlives the process.
type SessionState struct {
	mu sync.Mutex

	// ID identifies the session in logs.
	ID string

	// StartTime is when the session began.
	StartTime time.Time

	// Phase is the current step of the app flow.
	Phase SessionPhase

	// Profile is set once onboarding is submitted.
	Profile *profile.Profile

	// Results holds every finished assessment, oldest first.
	Results []assessment.Result

	// Activities holds every finished activity run, oldest first.
	Activities []ActivityRecord
}

// NewSessionState creates an empty session starting at now.
func NewSessionState(now time.Time) *SessionState {
	return &SessionState{
		ID:        uuid.New().String(),
		StartTime: now,
		Phase:     PhaseOnboarding,
	}
}
