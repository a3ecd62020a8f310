package jobs

import (
	"fmt"
	"time"
)

// maxProjectionMonths bounds the due-date search at 100 years. Hitting it
// means the stored anchor date is corrupt.
const maxProjectionMonths = 1200

// DateOnly formats a time as its calendar date, YYYY-MM-DD. Due dates are
// compared as these strings so that time-of-day and sub-day offsets never
// affect matching.
func DateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}

// Midnight truncates a time to the start of its calendar day, keeping the
// location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddMonths advances t by n whole months. When t's day-of-month does not
// exist in the target month, the result is clamped to the last valid day
// (Jan 31 + 1 month = Feb 28/29, never a rollover into March).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

// NextDueDate returns the first date on the anchor's monthly cycle that
// falls on or after today, comparing calendar dates only. Each candidate
// is derived from the anchor itself, so a month-end clamp in a short month
// does not shift the cycle for the months that follow. If anchor is
// already on or after today it is returned unchanged.
func NextDueDate(anchor, today time.Time) (time.Time, error) {
	start := Midnight(anchor)
	limit := Midnight(today)

	next := start
	for n := 1; next.Before(limit); n++ {
		if n > maxProjectionMonths {
			return time.Time{}, fmt.Errorf("no due date within %d months of anchor %s", maxProjectionMonths, DateOnly(anchor))
		}
		next = AddMonths(start, n)
	}
	return next, nil
}
