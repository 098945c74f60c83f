package assessment

// Category is the stress tier derived from a normalized score.
type Category string

const (
	CategoryLow      Category = "low"
	CategoryModerate Category = "moderate"
	CategoryHigh     Category = "high"
)

// DisplayName returns a human-readable label.
func (c Category) DisplayName() string {
	switch c {
	case CategoryLow:
		return "Low"
	case CategoryModerate:
		return "Moderate"
	case CategoryHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a finished assessment.
type Result struct {
	RawTotal        int
	MaxPossible     int
	NormalizedScore int
	Category        Category
}

// CategoryFor maps a normalized score to its category.
func CategoryFor(score int) Category {
	switch {
	case score >= 7:
		return CategoryHigh
	case score >= 4:
		return CategoryModerate
	default:
		return CategoryLow
	}
}

// Normalize scales rawTotal onto 0..10 against numQuestions*MaxOptionScore,
// rounding half up and clamping to the range.
func Normalize(rawTotal, numQuestions int) int {
	maxPossible := numQuestions * MaxOptionScore
	if maxPossible <= 0 || rawTotal <= 0 {
		return 0
	}
	// round(raw/max*10) == floor((20*raw + max) / (2*max)) for non-negative raw.
	score := (rawTotal*20 + maxPossible) / (2 * maxPossible)
	if score > 10 {
		score = 10
	}
	return score
}

// Score computes a Result from an answer set over the given questions.
// Answers for ids outside the question list are ignored.
func Score(questions []Question, answers map[string]int) Result {
	raw := 0
	for _, q := range questions {
		raw += answers[q.ID]
	}
	score := Normalize(raw, len(questions))
	return Result{
		RawTotal:        raw,
		MaxPossible:     len(questions) * MaxOptionScore,
		NormalizedScore: score,
		Category:        CategoryFor(score),
	}
}
