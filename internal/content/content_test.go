package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/calmly/internal/assessment"
	"github.com/abhisek/calmly/internal/sequence"
)

func TestLoad(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	assert.Len(t, lib.Questions, 10)
	assert.Len(t, lib.Activities, 6)
	assert.Len(t, lib.Quotes, 8)
	assert.Len(t, lib.StressAreas, 4)
	assert.NotEmpty(t, lib.NextSteps)
	assert.NotEmpty(t, lib.ProgressNote)

	for _, c := range []assessment.Category{assessment.CategoryLow, assessment.CategoryModerate, assessment.CategoryHigh} {
		assert.Len(t, lib.AdviceFor(c), 4, "advice for %s", c)
		out := lib.Outcome(c)
		assert.NotEmpty(t, out.Encouragement)
		assert.Len(t, out.Insights, 3)
	}
}

func TestQuestionScores(t *testing.T) {
	lib := MustDefault()
	want := map[string][]int{
		"sleep":         {1, 3, 6, 9},
		"worry":         {1, 4, 7, 10},
		"physical":      {1, 3, 6, 9},
		"concentration": {1, 3, 6, 10},
		"social":        {1, 2, 6, 9},
		"emotions":      {1, 3, 7, 10},
		"worklife":      {1, 3, 7, 10},
		"energy":        {1, 3, 6, 9},
		"appetite":      {1, 3, 6, 9},
		"decisions":     {1, 4, 7, 10},
	}
	maxTotal := 0
	for _, q := range lib.Questions {
		var scores []int
		for _, o := range q.Options {
			scores = append(scores, o.Score)
		}
		assert.Equal(t, want[q.ID], scores, q.ID)
		maxTotal += q.MaxScore()
	}
	assert.Equal(t, 95, maxTotal)
}

func TestActivityDurations(t *testing.T) {
	lib := MustDefault()
	tests := []struct {
		id    string
		kind  Kind
		steps int
		total int
	}{
		{"breathing", KindTimed, 4, 80},
		{"muscle", KindTimed, 10, 100},
		{"mindful", KindTimed, 3, 135},
		{"gratitude", KindJournal, 1, 300},
		{"meditation", KindMeditation, 1, 300},
		{"bodyscan", KindTimed, 8, 295},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			a, ok := lib.Activity(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.kind, a.Kind)
			assert.Len(t, a.Steps, tt.steps)
			assert.Equal(t, tt.total, sequence.TotalDuration(a.Steps))
		})
	}
}

func TestBreathingCycles(t *testing.T) {
	a, ok := MustDefault().Activity("breathing")
	require.True(t, ok)
	assert.Equal(t, "Cycle 1", a.Steps[0].Name)
	assert.Equal(t, "Cycle 4", a.Steps[3].Name)

	var names []string
	for _, p := range a.Steps[0].Phases {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Inhale", "Hold", "Exhale", "Rest"}, names)
}

func TestJournalAndMeditationExtras(t *testing.T) {
	lib := MustDefault()

	g, _ := lib.Activity("gratitude")
	assert.Len(t, g.Prompts, 3)

	m, _ := lib.Activity("meditation")
	require.NotNil(t, m.Minutes)
	assert.Equal(t, MinuteRange{Min: 1, Max: 30, Default: 5}, *m.Minutes)

	mf, _ := lib.Activity("mindful")
	assert.Len(t, mf.Steps[0].Examples, 5)
	assert.NotEmpty(t, mf.Steps[0].Instruction)
}

func TestValidateRejectsBadDocument(t *testing.T) {
	doc := map[string]any{
		"questions": []any{
			map[string]any{
				"id":   "sleep",
				"text": "How?",
				"options": []any{
					map[string]any{"value": "a", "label": "A", "score": 1},
					map[string]any{"value": "b", "label": "B", "score": 11},
				},
			},
		},
	}
	assert.Error(t, validate("questions", doc))

	doc["questions"].([]any)[0].(map[string]any)["options"].([]any)[1].(map[string]any)["score"] = 9
	assert.NoError(t, validate("questions", doc))
}

func TestJournalRequiresPrompts(t *testing.T) {
	doc := map[string]any{
		"activities": []any{
			map[string]any{
				"id":          "gratitude",
				"title":       "Journal",
				"description": "Write",
				"kind":        "journal",
				"steps":       []any{map[string]any{"name": "Reflect", "seconds": 300}},
			},
		},
	}
	assert.Error(t, validate("activities", doc))
}
