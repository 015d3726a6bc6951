package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	// InputLayout is the calendar form accepted in requests.
	InputLayout = "2006-01-02"
	// DisplayLayout renders dates as "Mon Jan 01 2024".
	DisplayLayout = "Mon Jan 02 2006"
)

var ErrInvalidDate = errors.New("invalid date")

// CalendarDate drops the time of day, keeping the date as seen in t's own
// location, and returns it as UTC midnight.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(InputLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return CalendarDate(t), nil
	}
	return time.Time{}, ErrInvalidDate
}

func FormatDate(t time.Time) string {
	return CalendarDate(t).Format(DisplayLayout)
}
