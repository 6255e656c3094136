package journal

import (
	"strings"
)

// Validate checks the invariants of journal content.
//
// The content must name a child and a destination, the number of daily
// pages must match the trip length and days must be numbered 1..n without
// gaps.
func (c *Content) Validate() error {
	if strings.TrimSpace(c.ChildName) == "" {
		return NewValidationError("child name is required")
	}
	if strings.TrimSpace(c.Destination) == "" {
		return NewValidationError("destination is required")
	}
	if c.TripDays < 1 {
		return NewValidationError("invalid trip length %d", c.TripDays)
	}

	if !c.StartDate.IsZero() && !c.EndDate.IsZero() {
		n := TripDays(c.StartDate, c.EndDate)
		if n != c.TripDays {
			return NewValidationError("trip from %v to %v has %d days, got tripDays=%d",
				FormatDate(c.StartDate), FormatDate(c.EndDate), n, c.TripDays)
		}
	}

	if len(c.DailyPages) != c.TripDays {
		return NewValidationError("expected %d daily pages, got %d", c.TripDays, len(c.DailyPages))
	}

	for i, d := range c.DailyPages {
		err := d.Validate()
		if err != nil {
			return err
		}
		if d.Day != i+1 {
			return NewValidationError("daily pages out of order: position %d has day %d", i+1, d.Day)
		}
	}

	return nil
}

// Validate checks a single daily page.
func (d DailyPage) Validate() error {
	if d.Day < 1 {
		return NewValidationError("invalid day number %d", d.Day)
	}
	n := len(d.Prompts)
	if n < 1 || n > MaxDailyPrompts {
		return NewValidationError("day %d: expected 1-%d prompts, got %d", d.Day, MaxDailyPrompts, n)
	}
	return nil
}
