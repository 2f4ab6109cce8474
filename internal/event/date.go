package event

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTZOffsetMinutes is UTC+5:30. The event runs on IST wall-clock
// time no matter where the viewer is, so "today" is always computed in
// this offset rather than the host timezone.
const DefaultTZOffsetMinutes = 330

const (
	labelLayout = "January 2, 2006"
	inputLayout = "2006-01-02"
)

// ParseLabel parses a calendar label like "April 5, 2026 (Purnahuti)",
// ignoring any trailing parenthetical annotation. The returned time is
// midnight UTC of that calendar date.
func ParseLabel(label string) (time.Time, error) {
	clean := label
	if i := strings.Index(clean, "("); i >= 0 {
		clean = clean[:i]
	}
	clean = strings.TrimSpace(clean)
	t, err := time.Parse(labelLayout, clean)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized event date %q: %w", label, err)
	}
	return t, nil
}

// ParseInput parses a YYYY-MM-DD form value.
func ParseInput(value string) (time.Time, error) {
	t, err := time.Parse(inputLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// FormatInput renders a date as zero-padded YYYY-MM-DD.
func FormatInput(t time.Time) string {
	return t.Format(inputLayout)
}

// FormatDisplay renders a date as "Monday, January 2".
func FormatDisplay(t time.Time) string {
	return t.Format("Monday, January 2")
}

// IsPast reports whether the labeled date is strictly before today, where
// today is taken in the fixed offsetMinutes timezone and both sides are
// truncated to midnight. Unparseable labels are never past.
func IsPast(label string, offsetMinutes int) bool {
	d, err := ParseLabel(label)
	if err != nil {
		return false
	}
	now := time.Now().UTC().Add(time.Duration(offsetMinutes) * time.Minute)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}
