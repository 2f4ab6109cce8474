package event

import (
	"testing"
	"time"
)

func TestParseLabel(t *testing.T) {
	t.Run("WithAnnotation", func(t *testing.T) {
		d, err := ParseLabel("April 5, 2026 (Purnahuti)")
		if err != nil {
			t.Fatalf("ParseLabel returned error: %v", err)
		}
		want := time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)
		if !d.Equal(want) {
			t.Errorf("expected %v, got %v", want, d)
		}
	})

	t.Run("PlainDate", func(t *testing.T) {
		d, err := ParseLabel("March 28, 2026")
		if err != nil {
			t.Fatalf("ParseLabel returned error: %v", err)
		}
		if d.Day() != 28 || d.Month() != time.March {
			t.Errorf("unexpected date %v", d)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := ParseLabel("not a date (really)"); err == nil {
			t.Fatal("expected error for unparseable label")
		}
	})
}

func TestFormatInput(t *testing.T) {
	d := time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatInput(d); got != "2026-04-05" {
		t.Errorf("expected 2026-04-05, got %s", got)
	}
}

func TestFormatDisplay(t *testing.T) {
	d := time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDisplay(d); got != "Sunday, April 5" {
		t.Errorf("expected 'Sunday, April 5', got %q", got)
	}
}

func TestIsPast(t *testing.T) {
	// Build labels relative to "today" in the event timezone so the test
	// holds regardless of the host timezone.
	now := time.Now().UTC().Add(DefaultTZOffsetMinutes * time.Minute)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	label := func(d time.Time) string { return d.Format("January 2, 2006") }

	if IsPast(label(today), DefaultTZOffsetMinutes) {
		t.Error("today must never be past")
	}
	if !IsPast(label(today.AddDate(0, 0, -1)), DefaultTZOffsetMinutes) {
		t.Error("yesterday must always be past")
	}
	if IsPast(label(today.AddDate(0, 0, 1)), DefaultTZOffsetMinutes) {
		t.Error("tomorrow must never be past")
	}
	if IsPast("garbage", DefaultTZOffsetMinutes) {
		t.Error("unparseable labels must never be past")
	}
}
