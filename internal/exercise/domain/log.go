package domain

import (
	"strings"
	"time"
)

// LogFilter narrows a user's exercises. Zero From/To and a Limit of 0 mean
// the bound is absent.
type LogFilter struct {
	From  time.Time
	To    time.Time
	Limit int
}

// FilterLog keeps store order, applies from then to (both inclusive), and
// only then truncates to Limit.
func FilterLog(exercises []Exercise, f LogFilter) []Exercise {
	out := make([]Exercise, 0, len(exercises))
	for _, e := range exercises {
		date := CalendarDate(e.Date)
		if !f.From.IsZero() && date.Before(CalendarDate(f.From)) {
			continue
		}
		if !f.To.IsZero() && date.After(CalendarDate(f.To)) {
			continue
		}
		out = append(out, e)
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

// ParseLimit reads the leading digits of value after an optional '+' sign.
// Anything without a positive leading integer, "0" and negatives included,
// yields 0, which means no limit.
func ParseLimit(value string) int {
	value = strings.TrimPrefix(strings.TrimSpace(value), "+")
	n := 0
	for _, r := range value {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		if n > maxLimit {
			return maxLimit
		}
	}
	return n
}

const maxLimit = 1 << 20
