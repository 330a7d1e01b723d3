package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDrawDate parses a draw date in the canonical "2006-01-02" form
func ParseDrawDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid draw date %q: %w", value, err)
	}
	return t, nil
}

// ParseClockTime parses an "HH:MM" or "HH:MM:SS" string into its hour and
// minute components
func ParseClockTime(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("invalid clock time %q", value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in clock time %q", value)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in clock time %q", value)
	}
	return hour, minute, nil
}

// NextOccurrence returns the next time after now at which the wall clock
// reads hour:minute in now's location. If that moment already passed today,
// tomorrow's occurrence is returned.
func NextOccurrence(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// HourLabel renders an hour of day as the short label used in trigger and
// game names ("9am", "12pm", "7pm")
func HourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12am"
	case hour < 12:
		return fmt.Sprintf("%dam", hour)
	case hour == 12:
		return "12pm"
	default:
		return fmt.Sprintf("%dpm", hour-12)
	}
}
