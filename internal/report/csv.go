package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/satram-seva/registration-api/internal/models"
)

// CSVHeader is the export column set, one row per registration with
// guests, accommodation and food flattened into named columns.
var CSVHeader = []string{
	"Registration ID",
	"Submission Date",
	"Full Name",
	"Mobile",
	"Age",
	"Gender",
	"City",
	"Attending Dates",
	"Total Guests",
	"Guest Details",
	"Accommodation Required",
	"Accommodation Count",
	"Check-in",
	"Check-out",
	"Food Packet Required",
	"Food Packet Count",
	"Food Pickup",
}

// CSVRow flattens one registration into the export columns.
func CSVRow(reg models.Registration) []string {
	guestDetails := make([]string, len(reg.Guests))
	for i, g := range reg.Guests {
		guestDetails[i] = fmt.Sprintf("%s (%d, %s)", g.FullName, g.Age, g.Gender)
	}

	accRequired, accCount, checkIn, checkOut := "No", "0", "", ""
	if reg.Accommodation.Required {
		accRequired = "Yes"
		accCount = strconv.Itoa(len(reg.Accommodation.MemberIDs))
		checkIn = strings.TrimSpace(reg.Accommodation.CheckInDate + " " + reg.Accommodation.CheckInTime)
		checkOut = strings.TrimSpace(reg.Accommodation.CheckOutDate + " " + reg.Accommodation.CheckOutTime)
	}

	foodRequired, foodCount, foodPickup := "No", "0", ""
	if reg.Food.TakeawayRequired {
		foodRequired = "Yes"
		foodCount = strconv.Itoa(reg.Food.PacketCount)
		foodPickup = strings.TrimSpace(reg.Food.PickupDate + " " + reg.Food.PickupTime)
	}

	return []string{
		reg.RegistrationID,
		reg.SubmittedAt.Format("2006-01-02 15:04:05"),
		reg.Primary.FullName,
		reg.Primary.Mobile,
		strconv.Itoa(reg.Primary.Age),
		string(reg.Primary.Gender),
		reg.Primary.City,
		strings.Join(reg.AttendingDates, "; "),
		strconv.Itoa(len(reg.Guests)),
		strings.Join(guestDetails, "; "),
		accRequired,
		accCount,
		checkIn,
		checkOut,
		foodRequired,
		foodCount,
		foodPickup,
	}
}

// WriteCSV streams the header and one row per registration to w.
func WriteCSV(w io.Writer, regs []models.Registration) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, reg := range regs {
		if err := cw.Write(CSVRow(reg)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
