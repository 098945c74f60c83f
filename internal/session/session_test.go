package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/calmly/internal/assessment"
	"github.com/abhisek/calmly/internal/profile"
	"github.com/abhisek/calmly/internal/sequence"
)

var start = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func TestSetProfile(t *testing.T) {
	state := NewSessionState(start)
	assert.NotEmpty(t, state.ID)
	assert.Equal(t, PhaseOnboarding, CurrentPhase(state))

	err := SetProfile(state, profile.Profile{Name: "Sam"}, start)
	assert.ErrorIs(t, err, profile.ErrGenderRequired)
	assert.Nil(t, CurrentProfile(state))

	p := profile.Profile{Name: "Sam", Gender: profile.GenderMale, DateOfBirth: "1990-01-01", StressSummary: "work"}
	require.NoError(t, SetProfile(state, p, start))
	assert.Equal(t, "Sam", CurrentProfile(state).Name)
	assert.Equal(t, PhaseAssessment, CurrentPhase(state))
}

func TestResultsAndRetake(t *testing.T) {
	state := NewSessionState(start)
	_, ok := LatestResult(state)
	assert.False(t, ok)

	RecordResult(state, assessment.Result{NormalizedScore: 8, Category: assessment.CategoryHigh})
	assert.Equal(t, PhaseResults, CurrentPhase(state))
	EnterDashboard(state)
	BeginRetake(state)
	assert.Equal(t, PhaseAssessment, CurrentPhase(state))
	RecordResult(state, assessment.Result{NormalizedScore: 5, Category: assessment.CategoryModerate})

	latest, ok := LatestResult(state)
	require.True(t, ok)
	assert.Equal(t, 5, latest.NormalizedScore)
}

func TestBuildSummary(t *testing.T) {
	state := NewSessionState(start)
	RecordResult(state, assessment.Result{NormalizedScore: 8, Category: assessment.CategoryHigh})
	RecordResult(state, assessment.Result{NormalizedScore: 6, Category: assessment.CategoryModerate})

	RecordActivity(state, ActivityRecord{ActivityID: "breathing", Reason: sequence.ReasonTimeout, Elapsed: 80 * time.Second})
	RecordActivity(state, ActivityRecord{ActivityID: "gratitude", Reason: sequence.ReasonManual, Elapsed: 95 * time.Second})
	RecordActivity(state, ActivityRecord{ActivityID: "breathing", Reason: sequence.ReasonTimeout, Elapsed: 80 * time.Second})
	RecordActivity(state, ActivityRecord{ActivityID: "custom", Elapsed: 5 * time.Second})

	sum := BuildSummary(state, []string{"breathing", "muscle", "gratitude"}, start.Add(30*time.Minute))

	assert.Equal(t, 30*time.Minute, sum.Duration)
	assert.Equal(t, 2, sum.Attempts)
	require.NotNil(t, sum.Latest)
	assert.Equal(t, assessment.CategoryModerate, sum.Latest.Category)
	assert.Equal(t, -2, sum.ScoreChange)
	assert.Equal(t, 4, sum.ActivityCount)
	assert.Equal(t, 260*time.Second, sum.RelaxingTime)

	assert.Equal(t, []ActivityTally{
		{ActivityID: "breathing", Runs: 2, Time: 160 * time.Second},
		{ActivityID: "muscle"},
		{ActivityID: "gratitude", Runs: 1, Manual: 1, Time: 95 * time.Second},
		{ActivityID: "custom", Runs: 1, Time: 5 * time.Second},
	}, sum.Tallies)
}

func TestBuildSummaryEmpty(t *testing.T) {
	sum := BuildSummary(NewSessionState(start), nil, start)
	assert.Nil(t, sum.Latest)
	assert.Zero(t, sum.Attempts)
	assert.Empty(t, sum.Tallies)
}
