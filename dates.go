package journal

import (
	"time"
)

const day = 24 * time.Hour

// DateFormat is the layout used for dates printed in the journal.
const DateFormat = "Jan 2, 2006"

// TripDays returns the inclusive number of calendar days between start and
// end. A trip that starts and ends on the same day has one day.
// Returns 0 if end is before start.
func TripDays(start, end time.Time) int {
	s := dateOf(start)
	e := dateOf(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s)/day) + 1
}

// DayDate returns the calendar date of the given trip day (1-based).
func DayDate(start time.Time, n int) time.Time {
	return dateOf(start).AddDate(0, 0, n-1)
}

// FormatDate formats a date for printing, e.g. "Mar 15, 2025".
// The zero time yields an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
