package common

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same day ignores time of day",
			from: time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC),
			to:   time.Date(2024, 3, 15, 0, 0, 1, 0, time.UTC),
			want: 0,
		},
		{
			name: "next day just after midnight",
			from: time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 3, 16, 1, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "past date is negative",
			from: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			want: -5,
		},
		{
			name: "across spring DST boundary",
			from: time.Date(2024, 3, 9, 12, 0, 0, 0, time.FixedZone("PST", -8*3600)),
			to:   time.Date(2024, 3, 11, 12, 0, 0, 0, time.FixedZone("PDT", -7*3600)),
			want: 2,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DaysBetween(c.from, c.to); got != c.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", c.from, c.to, got, c.want)
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 3, 15, 18, 30, 45, 999, time.UTC)
	got := StartOfDay(in)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDay(%v) = %v, want %v", in, got, want)
	}
}
