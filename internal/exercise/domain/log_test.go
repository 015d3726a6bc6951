package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse(InputLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleLog() []Exercise {
	return []Exercise{
		{ID: "1", Username: "alice", Description: "run", Duration: 30, Date: day("2024-01-10")},
		{ID: "2", Username: "alice", Description: "swim", Duration: 45, Date: day("2024-01-01")},
		{ID: "3", Username: "alice", Description: "bike", Duration: 60, Date: day("2024-02-15")},
		{ID: "4", Username: "alice", Description: "yoga", Duration: 20, Date: day("2024-01-31")},
		{ID: "5", Username: "alice", Description: "walk", Duration: 15, Date: day("2023-12-31")},
	}
}

func ids(exercises []Exercise) []ID {
	out := make([]ID, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, e.ID)
	}
	return out
}

func TestFilterLog(t *testing.T) {
	cases := []struct {
		name   string
		filter LogFilter
		want   []ID
	}{
		{name: "no filter keeps store order", filter: LogFilter{}, want: []ID{"1", "2", "3", "4", "5"}},
		{name: "from is inclusive", filter: LogFilter{From: day("2024-01-10")}, want: []ID{"1", "3", "4"}},
		{name: "to is inclusive", filter: LogFilter{To: day("2024-01-10")}, want: []ID{"1", "2", "5"}},
		{name: "from and to intersect", filter: LogFilter{From: day("2024-01-01"), To: day("2024-01-31")}, want: []ID{"1", "2", "4"}},
		{name: "limit after filtering", filter: LogFilter{From: day("2024-01-01"), Limit: 2}, want: []ID{"1", "2"}},
		{name: "limit larger than log", filter: LogFilter{Limit: 50}, want: []ID{"1", "2", "3", "4", "5"}},
		{name: "empty range", filter: LogFilter{From: day("2025-01-01")}, want: []ID{}},
		{name: "inverted range", filter: LogFilter{From: day("2024-02-01"), To: day("2024-01-01")}, want: []ID{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(FilterLog(sampleLog(), tc.filter)))
		})
	}
}

func TestFilterLog_IgnoresTimeOfDay(t *testing.T) {
	log := []Exercise{{ID: "late", Date: time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)}}

	got := FilterLog(log, LogFilter{From: day("2024-01-31"), To: day("2024-01-31")})
	assert.Len(t, got, 1)
}

func TestFilterLog_DoesNotMutateInput(t *testing.T) {
	in := sampleLog()
	_ = FilterLog(in, LogFilter{From: day("2024-01-10"), Limit: 1})
	assert.Equal(t, sampleLog(), in)
}

func TestParseLimit(t *testing.T) {
	cases := map[string]int{
		"":      0,
		"5":     5,
		" 12 ":  12,
		"7abc":  7,
		"+5":    5,
		"++5":   0,
		"+":     0,
		"abc":   0,
		"0":     0,
		"-3":    0,
		"2.9":   2,
		"99999999999999999999": maxLimit,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLimit(in), in)
	}
}
