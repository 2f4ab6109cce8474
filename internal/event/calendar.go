package event

// Phase groups the event days the way the programme is printed.
type Phase string

const (
	PhasePre  Phase = "Pre-Satram"
	PhaseMain Phase = "Satram"
	PhasePost Phase = "Post-Satram"
)

// Day is one entry of the fixed event calendar. The label may carry a
// trailing parenthetical annotation that is not part of the date.
type Day struct {
	Label string `json:"label"`
	Phase Phase  `json:"phase"`
}

// Calendar is the full 11-day schedule. Order matters for display and for
// the daily report; the dates themselves are ascending.
var Calendar = []Day{
	{Label: "March 27, 2026 (Arrival & Setup)", Phase: PhasePre},
	{Label: "March 28, 2026 (Inauguration)", Phase: PhaseMain},
	{Label: "March 29, 2026", Phase: PhaseMain},
	{Label: "March 30, 2026", Phase: PhaseMain},
	{Label: "March 31, 2026", Phase: PhaseMain},
	{Label: "April 1, 2026", Phase: PhaseMain},
	{Label: "April 2, 2026", Phase: PhaseMain},
	{Label: "April 3, 2026", Phase: PhaseMain},
	{Label: "April 4, 2026", Phase: PhaseMain},
	{Label: "April 5, 2026 (Purnahuti)", Phase: PhaseMain},
	{Label: "April 6, 2026 (Departure)", Phase: PhasePost},
}

// Labels returns the calendar labels in order.
func Labels() []string {
	labels := make([]string, len(Calendar))
	for i, d := range Calendar {
		labels[i] = d.Label
	}
	return labels
}

// Contains reports whether label is one of the calendar entries.
func Contains(label string) bool {
	for _, d := range Calendar {
		if d.Label == label {
			return true
		}
	}
	return false
}
