package structs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateRangeContains(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	start := day(2026, 1, 10)
	end := day(2026, 1, 20)

	tests := []struct {
		name string
		rng  DateRange
		t    time.Time
		want bool
	}{
		{"open range", DateRange{}, day(1999, 12, 31), true},
		{"inside", DateRange{Start: &start, End: &end}, day(2026, 1, 15), true},
		{"on start day", DateRange{Start: &start, End: &end}, day(2026, 1, 10), true},
		{"on end day", DateRange{Start: &start, End: &end}, day(2026, 1, 20), true},
		{"end day with time of day", DateRange{Start: &start, End: &end}, time.Date(2026, 1, 20, 23, 59, 0, 0, time.UTC), true},
		{"before start", DateRange{Start: &start, End: &end}, day(2026, 1, 9), false},
		{"after end", DateRange{Start: &start, End: &end}, day(2026, 1, 21), false},
		{"start only", DateRange{Start: &start}, day(2030, 6, 1), true},
		{"end only", DateRange{End: &end}, day(2026, 1, 25), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rng.Contains(tt.t))
		})
	}
}
