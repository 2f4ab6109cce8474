package report

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
	"time"

	"github.com/satram-seva/registration-api/internal/models"
)

func TestWriteCSV(t *testing.T) {
	regs := []models.Registration{
		{
			RegistrationID: "reg-1",
			SubmittedAt:    time.Date(2026, time.March, 1, 10, 30, 0, 0, time.UTC),
			Primary: models.Participant{
				ID:       "p-1",
				FullName: "Rao, Asha", // comma forces quoting
				Age:      34,
				Gender:   models.GenderFemale,
				Mobile:   "9876543210",
				City:     "Hyderabad",
			},
			AttendingDates: []string{"March 28, 2026 (Inauguration)", "April 5, 2026 (Purnahuti)"},
			Guests: []models.Guest{
				{ID: "g-1", FullName: "Ravi Rao", Age: 12, Gender: models.GenderMale},
			},
			Accommodation: models.Accommodation{
				Required:     true,
				MemberIDs:    []string{"p-1", "g-1"},
				CheckInDate:  "2026-03-27",
				CheckInTime:  "18:00",
				CheckOutDate: "2026-04-06",
				CheckOutTime: "09:00",
			},
			Food: models.Food{
				TakeawayRequired: true,
				PacketCount:      3,
				PickupDate:       "2026-04-06",
				PickupTime:       "08:00",
			},
			Status: models.StatusSubmitted,
		},
		{
			RegistrationID: "reg-2",
			SubmittedAt:    time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC),
			Primary: models.Participant{
				ID: "p-2", FullName: "B", Age: 20, Gender: models.GenderMale,
				Mobile: "1234567890", City: "Chennai",
			},
			AttendingDates: []string{"April 4, 2026"},
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, regs); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("export does not parse back as CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if !reflect.DeepEqual(records[0], CSVHeader) {
		t.Errorf("header mismatch: %v", records[0])
	}

	row := records[1]
	cols := map[string]string{}
	for i, name := range CSVHeader {
		cols[name] = row[i]
	}
	if cols["Full Name"] != "Rao, Asha" {
		t.Errorf("quoted name mangled: %q", cols["Full Name"])
	}
	if cols["Attending Dates"] != "March 28, 2026 (Inauguration); April 5, 2026 (Purnahuti)" {
		t.Errorf("unexpected attending dates: %q", cols["Attending Dates"])
	}
	if cols["Guest Details"] != "Ravi Rao (12, Male)" {
		t.Errorf("unexpected guest details: %q", cols["Guest Details"])
	}
	if cols["Accommodation Required"] != "Yes" || cols["Accommodation Count"] != "2" {
		t.Errorf("unexpected accommodation columns: %q / %q", cols["Accommodation Required"], cols["Accommodation Count"])
	}
	if cols["Check-in"] != "2026-03-27 18:00" || cols["Check-out"] != "2026-04-06 09:00" {
		t.Errorf("unexpected stay columns: %q / %q", cols["Check-in"], cols["Check-out"])
	}
	if cols["Food Packet Count"] != "3" || cols["Food Pickup"] != "2026-04-06 08:00" {
		t.Errorf("unexpected food columns: %q / %q", cols["Food Packet Count"], cols["Food Pickup"])
	}

	// The bare registration leaves optional columns empty or zeroed.
	bare := records[2]
	for i, name := range CSVHeader {
		cols[name] = bare[i]
	}
	if cols["Accommodation Required"] != "No" || cols["Check-in"] != "" {
		t.Errorf("unexpected columns for bare registration: %q / %q", cols["Accommodation Required"], cols["Check-in"])
	}
	if cols["Food Packet Required"] != "No" || cols["Food Packet Count"] != "0" {
		t.Errorf("unexpected food columns for bare registration: %q / %q", cols["Food Packet Required"], cols["Food Packet Count"])
	}
}
