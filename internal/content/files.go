package content

import (
	"fmt"

	"github.com/abhisek/calmly/internal/assessment"
	"github.com/abhisek/calmly/internal/sequence"
)

// On-disk shapes of the embedded YAML documents.

type questionsFile struct {
	Questions []questionDoc `yaml:"questions"`
}

type questionDoc struct {
	ID      string      `yaml:"id"`
	Text    string      `yaml:"text"`
	Options []optionDoc `yaml:"options"`
}

type optionDoc struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
	Score int    `yaml:"score"`
}

func (d questionDoc) toQuestion() assessment.Question {
	q := assessment.Question{ID: d.ID, Text: d.Text}
	for _, o := range d.Options {
		q.Options = append(q.Options, assessment.Option{Value: o.Value, Label: o.Label, Score: o.Score})
	}
	return q
}

type activitiesFile struct {
	Activities []activityDoc `yaml:"activities"`
}

type activityDoc struct {
	ID            string       `yaml:"id"`
	Title         string       `yaml:"title"`
	Description   string       `yaml:"description"`
	DurationLabel string       `yaml:"duration_label"`
	Kind          Kind         `yaml:"kind"`
	Repeat        int          `yaml:"repeat"`
	Tips          []string     `yaml:"tips"`
	Prompts       []string     `yaml:"prompts"`
	Minutes       *MinuteRange `yaml:"minutes"`
	Steps         []stepDoc    `yaml:"steps"`
}

type stepDoc struct {
	Name        string     `yaml:"name"`
	Seconds     int        `yaml:"seconds"`
	Instruction string     `yaml:"instruction"`
	Examples    []string   `yaml:"examples"`
	Phases      []phaseDoc `yaml:"phases"`
}

type phaseDoc struct {
	Name    string `yaml:"name"`
	Seconds int    `yaml:"seconds"`
}

func (d stepDoc) toStep() sequence.Step {
	s := sequence.Step{
		Name:        d.Name,
		Seconds:     d.Seconds,
		Instruction: d.Instruction,
		Examples:    d.Examples,
	}
	for _, p := range d.Phases {
		s.Phases = append(s.Phases, sequence.Phase{Name: p.Name, Seconds: p.Seconds})
	}
	return s
}

func (d activityDoc) toActivity() (Activity, error) {
	a := Activity{
		ID:            d.ID,
		Title:         d.Title,
		Description:   d.Description,
		DurationLabel: d.DurationLabel,
		Kind:          d.Kind,
		Tips:          d.Tips,
		Prompts:       d.Prompts,
		Minutes:       d.Minutes,
	}

	var steps []sequence.Step
	for _, sd := range d.Steps {
		steps = append(steps, sd.toStep())
	}
	if d.Repeat > 1 {
		if len(steps) != 1 {
			return Activity{}, fmt.Errorf("repeat needs exactly one step, got %d", len(steps))
		}
		steps = sequence.Repeat(steps[0], d.Repeat, "%s %d")
	}
	for _, s := range steps {
		if err := s.Validate(); err != nil {
			return Activity{}, err
		}
	}
	a.Steps = steps

	if m := a.Minutes; m != nil {
		if m.Min > m.Max || m.Default < m.Min || m.Default > m.Max {
			return Activity{}, fmt.Errorf("minutes range %d..%d with default %d", m.Min, m.Max, m.Default)
		}
	}
	return a, nil
}

type libraryFile struct {
	Results struct {
		Low      Outcome `yaml:"low"`
		Moderate Outcome `yaml:"moderate"`
		High     Outcome `yaml:"high"`
	} `yaml:"results"`
	NextSteps []string `yaml:"next_steps"`
	Advice    struct {
		Low      []string `yaml:"low"`
		Moderate []string `yaml:"moderate"`
		High     []string `yaml:"high"`
	} `yaml:"advice"`
	Quotes       []string     `yaml:"quotes"`
	ProgressNote string       `yaml:"progress_note"`
	StressAreas  []StressArea `yaml:"stress_areas"`
}
