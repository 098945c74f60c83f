// Package activity turns the static activity descriptions into runnable
// timed sequences.
package activity

import (
	"errors"
	"fmt"

	"github.com/abhisek/calmly/internal/content"
)

var (
	ErrUnknownActivity = errors.New("activity: unknown activity")
	ErrInvalidDuration = errors.New("activity: invalid duration")
)

// Catalog lists the available activities.
type Catalog struct {
	activities     []content.Activity
	defaultMinutes int
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithDefaultMinutes overrides the default meditation length. Values
// outside the activity's range are ignored.
func WithDefaultMinutes(m int) CatalogOption {
	return func(c *Catalog) {
		c.defaultMinutes = m
	}
}

// NewCatalog builds a catalog over the library's activities.
func NewCatalog(lib *content.Library, opts ...CatalogOption) *Catalog {
	c := &Catalog{activities: lib.Activities}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// All returns every activity in display order.
func (c *Catalog) All() []content.Activity {
	return c.activities
}

// Get returns the activity with the given id.
func (c *Catalog) Get(id string) (content.Activity, error) {
	for _, a := range c.activities {
		if a.ID == id {
			return a, nil
		}
	}
	return content.Activity{}, fmt.Errorf("%w: %q", ErrUnknownActivity, id)
}

// DefaultMinutes returns the starting length for an adjustable activity.
func (c *Catalog) DefaultMinutes(a content.Activity) int {
	if a.Minutes == nil {
		return 0
	}
	if c.defaultMinutes >= a.Minutes.Min && c.defaultMinutes <= a.Minutes.Max {
		return c.defaultMinutes
	}
	return a.Minutes.Default
}

// ValidateMinutes checks m against the activity's adjustable range.
func ValidateMinutes(a content.Activity, m int) error {
	if a.Minutes == nil {
		return fmt.Errorf("%w: %s has a fixed length", ErrInvalidDuration, a.ID)
	}
	if m < a.Minutes.Min || m > a.Minutes.Max {
		return fmt.Errorf("%w: %d minutes, want %d..%d", ErrInvalidDuration, m, a.Minutes.Min, a.Minutes.Max)
	}
	return nil
}
