package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned when a time of day is not "HH:MM" on a 24-hour clock.
var ErrInvalidTimeFormat = errors.New("time format must be HH:MM")

const minutesPerDay = 24 * 60

// ParseClock returns the minutes since midnight for an "HH:MM" string.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return hour*60 + minute, nil
}

// SessionHours computes the length of a session in hours, rounded to 2 decimals.
// An end time earlier than the start time is taken to be on the next day.
//
// Equal start and end times give 0. Deciding whether a duration is acceptable
// is left to the caller.
func SessionHours(start, end string) (float64, error) {
	from, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	to, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	if to < from {
		to += minutesPerDay
	}
	return Round2(float64(to-from) / 60), nil
}

// Round2 rounds x to 2 decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// FormatDuration renders hours as "1h 30m", "2h" or "45m". Partial minutes
// are dropped.
func FormatDuration(hours float64) string {
	total := int(hours*60 + 1e-9)
	h, m := total/60, total%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
