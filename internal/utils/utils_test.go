package utils

import (
	"testing"
	"time"
)

func TestParseDrawDate(t *testing.T) {
	got, err := ParseDrawDate("2025-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 2025 || got.Month() != time.January || got.Day() != 10 {
		t.Errorf("unexpected date: %v", got)
	}

	if _, err := ParseDrawDate("10/01/2025"); err == nil {
		t.Error("slash format should be rejected")
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{"09:05", 9, 5, true},
		{"19:10:00", 19, 10, true},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"noon", 0, 0, false},
	}

	for _, tt := range tests {
		hour, minute, err := ParseClockTime(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseClockTime(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && (hour != tt.hour || minute != tt.minute) {
			t.Errorf("ParseClockTime(%q) = (%d, %d), want (%d, %d)", tt.in, hour, minute, tt.hour, tt.minute)
		}
	}
}

func TestNextOccurrence(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	// Later today.
	next := NextOccurrence(now, 16, 5)
	if next.Day() != 10 || next.Hour() != 16 || next.Minute() != 5 {
		t.Errorf("unexpected next occurrence: %v", next)
	}

	// Already passed: tomorrow.
	next = NextOccurrence(now, 9, 5)
	if next.Day() != 11 || next.Hour() != 9 {
		t.Errorf("expected tomorrow's occurrence, got %v", next)
	}

	// Exactly now: tomorrow.
	next = NextOccurrence(now, 12, 0)
	if next.Day() != 11 {
		t.Errorf("an occurrence exactly at now should roll to tomorrow, got %v", next)
	}
}

func TestHourLabel(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12am"}, {9, "9am"}, {12, "12pm"}, {13, "1pm"}, {16, "4pm"}, {19, "7pm"},
	}
	for _, tt := range tests {
		if got := HourLabel(tt.hour); got != tt.want {
			t.Errorf("HourLabel(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
