package event

import (
	"testing"
)

func TestCalendar(t *testing.T) {
	if len(Calendar) != 11 {
		t.Fatalf("expected 11 event days, got %d", len(Calendar))
	}

	// Every label parses and dates ascend.
	var prev int64
	for _, d := range Calendar {
		parsed, err := ParseLabel(d.Label)
		if err != nil {
			t.Fatalf("calendar label %q does not parse: %v", d.Label, err)
		}
		if parsed.Unix() <= prev {
			t.Errorf("calendar not ascending at %q", d.Label)
		}
		prev = parsed.Unix()
	}

	if Calendar[0].Phase != PhasePre {
		t.Errorf("first day should be %s, got %s", PhasePre, Calendar[0].Phase)
	}
	if Calendar[len(Calendar)-1].Phase != PhasePost {
		t.Errorf("last day should be %s, got %s", PhasePost, Calendar[len(Calendar)-1].Phase)
	}
}

func TestContains(t *testing.T) {
	if !Contains("April 4, 2026") {
		t.Error("expected calendar to contain April 4, 2026")
	}
	if Contains("April 4, 2027") {
		t.Error("did not expect calendar to contain April 4, 2027")
	}
}

func TestLabels(t *testing.T) {
	labels := Labels()
	if len(labels) != len(Calendar) {
		t.Fatalf("expected %d labels, got %d", len(Calendar), len(labels))
	}
	if labels[0] != Calendar[0].Label {
		t.Errorf("labels out of order: %s", labels[0])
	}
}
