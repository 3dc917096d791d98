// Package datespan evaluates whole-day spans between calendar dates.
//
// Dates are exchanged with the backend as ISO calendar-date strings
// (YYYY-MM-DD) with no time or timezone component, so all arithmetic here is
// at day granularity. The package never reads the wall clock; callers that
// need "today" pass it in explicitly.
package datespan

import "time"

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// Span is the whole-day distance between two calendar dates, end exclusive.
// A span is valid only when both dates are present and parsable and the
// distance is strictly positive; a non-positive distance is invalid, not zero.
type Span struct {
	Days  int
	Valid bool
}

// Parse parses a calendar-date string in strict YYYY-MM-DD form.
func Parse(value string) (time.Time, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return time.Time{}, err
	}

	return t, nil
}

// AtDay truncates a time to its calendar day in UTC.
func AtDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the calendar-day difference end - start.
func DaysBetween(start, end time.Time) int {
	return int(AtDay(end).Sub(AtDay(start)) / (24 * time.Hour))
}

// Between evaluates the span between two calendar-date strings.
func Between(start, end string) Span {
	if start == "" || end == "" {
		return Span{}
	}

	s, err := Parse(start)
	if err != nil {
		return Span{}
	}

	e, err := Parse(end)
	if err != nil {
		return Span{}
	}

	days := DaysBetween(s, e)
	if days <= 0 {
		return Span{}
	}

	return Span{Days: days, Valid: true}
}
