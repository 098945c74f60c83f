// Package content loads the static questionnaire, activity and advice
// library shipped with the binary.
package content

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/calmly/internal/assessment"
	"github.com/abhisek/calmly/internal/sequence"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Kind selects how an activity is driven.
type Kind string

const (
	KindTimed      Kind = "timed"
	KindMeditation Kind = "meditation"
	KindJournal    Kind = "journal"
)

// MinuteRange bounds a user-adjustable activity length.
type MinuteRange struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Default int `yaml:"default"`
}

// Activity is the static description of a guided activity.
type Activity struct {
	ID            string
	Title         string
	Description   string
	DurationLabel string
	Kind          Kind
	Tips          []string
	Prompts       []string
	Minutes       *MinuteRange
	Steps         []sequence.Step
}

// Outcome is the text shown for one result category.
type Outcome struct {
	Encouragement string   `yaml:"encouragement"`
	Insights      []string `yaml:"insights"`
}

// Entry is a titled piece of educational text.
type Entry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// StressArea groups common causes of stress in one life area with ways to address them.
type StressArea struct {
	Title     string  `yaml:"title"`
	Causes    []Entry `yaml:"causes"`
	Solutions []Entry `yaml:"solutions"`
}

// Library is the full validated content set.
type Library struct {
	Questions    []assessment.Question
	Activities   []Activity
	Results      map[assessment.Category]Outcome
	NextSteps    []string
	Advice       map[assessment.Category][]string
	Quotes       []string
	ProgressNote string
	StressAreas  []StressArea
}

// Outcome returns the result text for a category.
func (l *Library) Outcome(c assessment.Category) Outcome {
	return l.Results[c]
}

// AdviceFor returns the advice list for a category.
func (l *Library) AdviceFor(c assessment.Category) []string {
	return l.Advice[c]
}

// Activity looks up an activity by id.
func (l *Library) Activity(id string) (Activity, bool) {
	for _, a := range l.Activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

// Default returns the embedded library, loading it on first use.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		defaultLib, defaultErr = Load()
	})
	return defaultLib, defaultErr
}

// MustDefault is like Default but panics on error.
func MustDefault() *Library {
	lib, err := Default()
	if err != nil {
		panic(err)
	}
	return lib
}

// Load parses and validates every embedded content file.
func Load() (*Library, error) {
	lib := &Library{}

	var qf questionsFile
	if err := decode("questions", &qf); err != nil {
		return nil, err
	}
	for _, q := range qf.Questions {
		lib.Questions = append(lib.Questions, q.toQuestion())
	}
	if err := assessment.ValidateQuestions(lib.Questions); err != nil {
		return nil, fmt.Errorf("questions: %w", err)
	}

	var af activitiesFile
	if err := decode("activities", &af); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(af.Activities))
	for _, raw := range af.Activities {
		if seen[raw.ID] {
			return nil, fmt.Errorf("activities: duplicate id %q", raw.ID)
		}
		seen[raw.ID] = true
		a, err := raw.toActivity()
		if err != nil {
			return nil, fmt.Errorf("activities: %s: %w", raw.ID, err)
		}
		lib.Activities = append(lib.Activities, a)
	}

	var lf libraryFile
	if err := decode("library", &lf); err != nil {
		return nil, err
	}
	lib.Results = map[assessment.Category]Outcome{
		assessment.CategoryLow:      lf.Results.Low,
		assessment.CategoryModerate: lf.Results.Moderate,
		assessment.CategoryHigh:     lf.Results.High,
	}
	lib.Advice = map[assessment.Category][]string{
		assessment.CategoryLow:      lf.Advice.Low,
		assessment.CategoryModerate: lf.Advice.Moderate,
		assessment.CategoryHigh:     lf.Advice.High,
	}
	lib.NextSteps = lf.NextSteps
	lib.Quotes = lf.Quotes
	lib.ProgressNote = lf.ProgressNote
	lib.StressAreas = lf.StressAreas

	return lib, nil
}

// decode reads data/<name>.yaml, validates it against its schema and
// unmarshals it into out.
func decode(name string, out any) error {
	raw, err := dataFS.ReadFile("data/" + name + ".yaml")
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if err := validate(name, doc); err != nil {
		return fmt.Errorf("validate %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
