package timeutil

import (
	"testing"
	"time"
)

func TestDayKeyUsesGivenLocation(t *testing.T) {
	// 2026-08-27 23:30 UTC is already the 28th one hour east.
	at := time.Date(2026, 8, 27, 23, 30, 0, 0, time.UTC)
	east := time.FixedZone("UTC+1", 60*60)

	if got := DayKey(at, time.UTC); got != "2026-08-27" {
		t.Fatalf("utc: got %q", got)
	}
	if got := DayKey(at, east); got != "2026-08-28" {
		t.Fatalf("east: got %q", got)
	}
}

func TestSameDayBoundary(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	a := time.Date(2026, 8, 27, 23, 59, 59, 0, loc)
	b := time.Date(2026, 8, 28, 0, 0, 1, 0, loc)

	if SameDay(a, b, loc) {
		t.Fatal("seconds across midnight must land in different days")
	}
	if !SameDay(a, a.Add(-23*time.Hour), loc) {
		t.Fatal("times within the same date must match")
	}
}

func TestParseDayKeyRoundTrip(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	at, err := ParseDayKey("2026-02-28", loc)
	if err != nil {
		t.Fatal(err)
	}
	if got := DayKey(at, loc); got != "2026-02-28" {
		t.Fatalf("got %q", got)
	}
	if _, err := ParseDayKey("28/02/2026", loc); err == nil {
		t.Fatal("expected error for a non day-key layout")
	}
}

func TestDaysAgo(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if got := DaysAgo(at, 1, time.UTC); got != "2026-02-28" {
		t.Fatalf("got %q", got)
	}
	if got := DaysAgo(at, 0, time.UTC); got != "2026-03-01" {
		t.Fatalf("got %q", got)
	}
}

func TestParseWindowDays(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "7", want: 7},
		{input: "7d", want: 7},
		{input: "1w", want: 7},
		{input: "2 weeks", want: 14},
		{input: " 10 Days ", want: 10},
		{input: "", want: 7}, // default window
		{input: "0d", wantErr: true},
		{input: "3h", wantErr: true},
		{input: "week", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseWindowDays(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error, got %d", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("%q: got %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestFormatWindowDays(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "0d"},
		{3, "3d"},
		{7, "1w"},
		{9, "1w2d"},
		{14, "2w"},
	}
	for _, tc := range tests {
		if got := FormatWindowDays(tc.days); got != tc.want {
			t.Fatalf("%d: got %q, want %q", tc.days, got, tc.want)
		}
	}
}
