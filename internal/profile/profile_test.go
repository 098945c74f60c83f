package profile

import (
	"errors"
	"testing"
	"time"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func validProfile() Profile {
	return Profile{
		Name:          "Sam",
		Gender:        GenderFemale,
		DateOfBirth:   "1998-03-02",
		StressSummary: "Exams and work piling up.",
	}
}

func TestValidateOK(t *testing.T) {
	if err := validProfile().Validate(now); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Profile)
		want   error
	}{
		{"blank name", func(p *Profile) { p.Name = "   " }, ErrNameRequired},
		{"no gender", func(p *Profile) { p.Gender = "" }, ErrGenderRequired},
		{"unknown gender", func(p *Profile) { p.Gender = "robot" }, ErrGenderRequired},
		{"no birth date", func(p *Profile) { p.DateOfBirth = "" }, ErrBirthRequired},
		{"bad birth date", func(p *Profile) { p.DateOfBirth = "02/03/1998" }, ErrBirthInvalid},
		{"future birth date", func(p *Profile) { p.DateOfBirth = "2030-01-01" }, ErrBirthInvalid},
		{"no summary", func(p *Profile) { p.StressSummary = "\n" }, ErrSummaryRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := p.Validate(now)
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	err := Profile{}.Validate(now)
	for _, want := range []error{ErrNameRequired, ErrGenderRequired, ErrBirthRequired, ErrSummaryRequired} {
		if !errors.Is(err, want) {
			t.Errorf("Validate() missing %v", want)
		}
	}
}

func TestAge(t *testing.T) {
	p := validProfile()
	if got := p.Age(now); got != 27 {
		t.Errorf("Age = %d, want 27", got)
	}
	p.DateOfBirth = "2000-12-31"
	if got := p.Age(now); got != 24 {
		t.Errorf("Age = %d, want 24", got)
	}
	p.DateOfBirth = "nope"
	if got := p.Age(now); got != -1 {
		t.Errorf("Age = %d, want -1", got)
	}
}

func TestAgeAcrossLeapYears(t *testing.T) {
	tests := []struct {
		dob  string
		now  time.Time
		want int
	}{
		{"2000-03-01", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 25},
		{"2000-03-01", time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), 24},
		{"2001-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 23},
		{"2000-02-29", time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), 24},
		{"2000-02-29", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 25},
		{"2000-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 24},
	}
	for _, tt := range tests {
		p := Profile{DateOfBirth: tt.dob}
		if got := p.Age(tt.now); got != tt.want {
			t.Errorf("Age(%s at %s) = %d, want %d", tt.dob, tt.now.Format(DateLayout), got, tt.want)
		}
	}
}
