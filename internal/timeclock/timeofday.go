// Package timeclock is the time-ledger core: wall-clock parsing, elapsed-hours
// calculation, an append-only ledger of logged intervals, and aggregate stats.
// It is pure and storage-free; persistence and identity live in repo/service.
package timeclock

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat is returned when a time-of-day string is not a valid
// 24-hour "HH:MM" value.
var ErrInvalidFormat = errors.New("time of day must be HH:MM (00-23 hours, 00-59 minutes)")

// TimeOfDay is a moment within a single day at minute resolution (0..1439).
// The zero value is midnight.
type TimeOfDay struct {
	minutes int
}

// ParseTimeOfDay parses a 24-hour clock string like "08:00". One-digit
// components are accepted ("8:0" equals "08:00") but String always emits the
// canonical zero-padded form. Anything else fails with ErrInvalidFormat.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hStr, mStr, found := strings.Cut(s, ":")
	if !found {
		return TimeOfDay{}, fmt.Errorf("parse %q: %w", s, ErrInvalidFormat)
	}
	h, ok := parseComponent(hStr)
	if !ok || h > 23 {
		return TimeOfDay{}, fmt.Errorf("parse %q: %w", s, ErrInvalidFormat)
	}
	m, ok := parseComponent(mStr)
	if !ok || m > 59 {
		return TimeOfDay{}, fmt.Errorf("parse %q: %w", s, ErrInvalidFormat)
	}
	return TimeOfDay{minutes: h*60 + m}, nil
}

// parseComponent converts a 1-2 digit decimal string. No signs, no spaces.
func parseComponent(s string) (int, bool) {
	if len(s) < 1 || len(s) > 2 {
		return 0, false
	}
	n := 0
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// String returns the canonical zero-padded "HH:MM" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// Hour returns the hour component (0..23).
func (t TimeOfDay) Hour() int { return t.minutes / 60 }

// Minute returns the minute component (0..59).
func (t TimeOfDay) Minute() int { return t.minutes % 60 }

// MinuteOfDay returns the minutes elapsed since midnight (0..1439).
func (t TimeOfDay) MinuteOfDay() int { return t.minutes }
