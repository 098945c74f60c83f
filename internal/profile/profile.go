// Package profile holds the onboarding details a user provides before the assessment.
package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the accepted date-of-birth format.
const DateLayout = "2006-01-02"

// Gender is the user's self-reported gender.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// Genders lists the selectable values in display order.
var Genders = []Gender{GenderFemale, GenderMale}

// DisplayName returns a human-readable label.
func (g Gender) DisplayName() string {
	switch g {
	case GenderFemale:
		return "Female"
	case GenderMale:
		return "Male"
	default:
		return ""
	}
}

var (
	ErrNameRequired    = errors.New("name is required")
	ErrGenderRequired  = errors.New("gender is required")
	ErrBirthRequired   = errors.New("date of birth is required")
	ErrBirthInvalid    = errors.New("date of birth must be a past date in YYYY-MM-DD form")
	ErrSummaryRequired = errors.New("a short summary of what has been stressing you is required")
)

// Profile is what the onboarding form collects.
type Profile struct {
	Name          string
	Gender        Gender
	DateOfBirth   string
	StressSummary string
}

// Validate returns every problem with p joined together, or nil.
func (p Profile) Validate(now time.Time) error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ErrNameRequired)
	}
	if p.Gender.DisplayName() == "" {
		errs = append(errs, ErrGenderRequired)
	}
	if strings.TrimSpace(p.DateOfBirth) == "" {
		errs = append(errs, ErrBirthRequired)
	} else if dob, err := time.Parse(DateLayout, strings.TrimSpace(p.DateOfBirth)); err != nil || !dob.Before(now) {
		errs = append(errs, ErrBirthInvalid)
	}
	if strings.TrimSpace(p.StressSummary) == "" {
		errs = append(errs, ErrSummaryRequired)
	}
	return errors.Join(errs...)
}

// Age returns the age in whole years at now, or -1 if the date of birth does not parse.
func (p Profile) Age(now time.Time) int {
	dob, err := time.Parse(DateLayout, strings.TrimSpace(p.DateOfBirth))
	if err != nil {
		return -1
	}
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// Greeting returns the name to address the user by.
func (p Profile) Greeting() string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return "friend"
	}
	return name
}

func (p Profile) String() string {
	return fmt.Sprintf("%s (%s)", p.Greeting(), p.Gender.DisplayName())
}
