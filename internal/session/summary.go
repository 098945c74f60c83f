package session

import (
	"time"

	"github.com/abhisek/calmly/internal/assessment"
	"github.com/abhisek/calmly/internal/sequence"
)

// ActivityTally counts finished runs of one activity.
type ActivityTally struct {
	ActivityID string
	Runs       int
	Manual     int
	Time       time.Duration
}

// SessionSummary holds the data displayed on the progress tab.
type SessionSummary struct {
	Duration      time.Duration
	Attempts      int
	Latest        *assessment.Result
	ScoreChange   int
	RelaxingTime  time.Duration
	ActivityCount int
	Tallies       []ActivityTally
}

// BuildSummary creates a SessionSummary from the current session state.
// Tallies follow the order of activityIDs; unknown ids are appended after.
func BuildSummary(state *SessionState, activityIDs []string, now time.Time) *SessionSummary {
	state.mu.Lock()
	defer state.mu.Unlock()

	sum := &SessionSummary{
		Duration:      now.Sub(state.StartTime),
		Attempts:      len(state.Results),
		ActivityCount: len(state.Activities),
	}
	if n := len(state.Results); n > 0 {
		latest := state.Results[n-1]
		sum.Latest = &latest
		sum.ScoreChange = latest.NormalizedScore - state.Results[0].NormalizedScore
	}

	byID := make(map[string]*ActivityTally)
	var order []string
	for _, id := range activityIDs {
		byID[id] = &ActivityTally{ActivityID: id}
		order = append(order, id)
	}
	for _, rec := range state.Activities {
		t, ok := byID[rec.ActivityID]
		if !ok {
			t = &ActivityTally{ActivityID: rec.ActivityID}
			byID[rec.ActivityID] = t
			order = append(order, rec.ActivityID)
		}
		t.Runs++
		if rec.Reason == sequence.ReasonManual {
			t.Manual++
		}
		t.Time += rec.Elapsed
		sum.RelaxingTime += rec.Elapsed
	}
	for _, id := range order {
		sum.Tallies = append(sum.Tallies, *byID[id])
	}
	return sum
}
