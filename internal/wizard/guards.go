package wizard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/satram-seva/registration-api/internal/event"
	"github.com/satram-seva/registration-api/internal/models"
	"github.com/satram-seva/registration-api/internal/store"
)

// CheckPrimary validates the personal-details step: name, city and a
// mobile with at least 10 digits.
func CheckPrimary(reg *models.Registration) *ValidationError {
	p := reg.Primary
	if strings.TrimSpace(p.FullName) == "" || strings.TrimSpace(p.Mobile) == "" || strings.TrimSpace(p.City) == "" {
		return &ValidationError{Step: StepPrimary, Reason: "please fill in all required fields"}
	}
	if len(store.NormalizeMobile(p.Mobile)) < 10 {
		return &ValidationError{Step: StepPrimary, Reason: "please enter a valid mobile number"}
	}
	return nil
}

// CheckMobileUnique asks the store whether the mobile already belongs to a
// different registration. Absence is fine; a record with the same identity
// token is the registrant editing their own submission. A store failure
// blocks the step, it never silently permits a duplicate.
func CheckMobileUnique(ctx context.Context, st store.RegistrationStore, reg *models.Registration) error {
	existing, err := st.GetByMobile(ctx, reg.Primary.Mobile)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return &LookupError{Err: err}
	}
	if existing.RegistrationID != reg.RegistrationID {
		return &DuplicateMobileError{Mobile: store.NormalizeMobile(reg.Primary.Mobile)}
	}
	return nil
}

func CheckAttendance(reg *models.Registration) *ValidationError {
	if len(reg.AttendingDates) == 0 {
		return &ValidationError{Step: StepAttendance, Reason: "please select at least one date"}
	}
	return nil
}

// CheckGuests requires every added guest to have a name and a positive age.
func CheckGuests(reg *models.Registration) *ValidationError {
	for i, g := range reg.Guests {
		if strings.TrimSpace(g.FullName) == "" || g.Age <= 0 {
			return &ValidationError{
				Step:   StepGuests,
				Reason: fmt.Sprintf("guest %d needs a name and a valid age", i+1),
			}
		}
	}
	return nil
}

// StayWindow is the candidate sets for the accommodation date pickers:
// exactly two legal days per boundary, derived from the attended dates.
// Both slices are empty when no attended date parses.
type StayWindow struct {
	CheckIn  []time.Time
	CheckOut []time.Time
}

func (w StayWindow) containsCheckIn(d time.Time) bool  { return containsDay(w.CheckIn, d) }
func (w StayWindow) containsCheckOut(d time.Time) bool { return containsDay(w.CheckOut, d) }

func containsDay(days []time.Time, d time.Time) bool {
	for _, day := range days {
		if day.Equal(d) {
			return true
		}
	}
	return false
}

// AllowedStayDates derives the stay window: check-in is the day before the
// first attended date or that date itself, check-out the last attended
// date or the day after. Unparseable labels are skipped.
func AllowedStayDates(reg *models.Registration) StayWindow {
	var dates []time.Time
	for _, label := range reg.AttendingDates {
		d, err := event.ParseLabel(label)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return StayWindow{}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	first := dates[0]
	last := dates[len(dates)-1]
	return StayWindow{
		CheckIn:  []time.Time{first.AddDate(0, 0, -1), first},
		CheckOut: []time.Time{last, last.AddDate(0, 0, 1)},
	}
}

// PickupDates is the candidate set for the food pickup date when the
// registrant has no accommodation: the last attended day or the day after.
func PickupDates(reg *models.Registration) []time.Time {
	return AllowedStayDates(reg).CheckOut
}

// CheckAccommodation validates the stay step when a stay is requested:
// someone must be selected, both boundary dates set and ordered, and each
// boundary must fall on one of its two candidate days.
func CheckAccommodation(reg *models.Registration) *ValidationError {
	acc := reg.Accommodation
	if !acc.Required {
		return nil
	}
	if len(acc.MemberIDs) == 0 {
		return &ValidationError{Step: StepAccommodation, Reason: "please select who needs accommodation"}
	}
	if acc.CheckInDate == "" || acc.CheckOutDate == "" {
		return &ValidationError{Step: StepAccommodation, Reason: "please select both check-in and check-out dates"}
	}

	checkIn, err := event.ParseInput(acc.CheckInDate)
	if err != nil {
		return &ValidationError{Step: StepAccommodation, Reason: "please select both check-in and check-out dates"}
	}
	checkOut, err := event.ParseInput(acc.CheckOutDate)
	if err != nil {
		return &ValidationError{Step: StepAccommodation, Reason: "please select both check-in and check-out dates"}
	}

	if checkIn.After(checkOut) {
		return &ValidationError{Step: StepAccommodation, Reason: "check-out date cannot be before check-in date"}
	}

	window := AllowedStayDates(reg)
	if len(window.CheckIn) == 0 {
		// no parseable attended dates, nothing to bound against
		return nil
	}
	if !window.containsCheckIn(checkIn) {
		return &ValidationError{
			Step: StepAccommodation,
			Reason: fmt.Sprintf("check-in date %s is outside the allowed window, please arrive on %s or %s",
				acc.CheckInDate, event.FormatInput(window.CheckIn[0]), event.FormatInput(window.CheckIn[1])),
		}
	}
	if !window.containsCheckOut(checkOut) {
		return &ValidationError{
			Step: StepAccommodation,
			Reason: fmt.Sprintf("check-out date %s is outside the allowed window, please depart on %s or %s",
				acc.CheckOutDate, event.FormatInput(window.CheckOut[0]), event.FormatInput(window.CheckOut[1])),
		}
	}
	return nil
}

// SyncFoodPickup forces the pickup date to the accommodation check-out
// when a stay is requested. One-way: accommodation drives food, never the
// reverse.
func SyncFoodPickup(reg *models.Registration) {
	if reg.Accommodation.Required && reg.Accommodation.CheckOutDate != "" {
		reg.Food.PickupDate = reg.Accommodation.CheckOutDate
	}
}

// CheckFood validates the takeaway step: a positive packet count and a
// resolved pickup date. Without accommodation the pickup date must be one
// of the two departure candidates.
func CheckFood(reg *models.Registration) *ValidationError {
	f := reg.Food
	if !f.TakeawayRequired {
		return nil
	}
	if f.PacketCount <= 0 {
		return &ValidationError{Step: StepFood, Reason: "please enter a valid number of food packets"}
	}
	if f.PickupDate == "" {
		return &ValidationError{Step: StepFood, Reason: "please select a pickup date"}
	}

	if reg.Accommodation.Required {
		// pickup is locked to the check-out date by SyncFoodPickup
		return nil
	}

	pickup, err := event.ParseInput(f.PickupDate)
	if err != nil {
		return &ValidationError{Step: StepFood, Reason: "please select a pickup date"}
	}
	candidates := PickupDates(reg)
	if len(candidates) == 0 {
		return nil
	}
	if !containsDay(candidates, pickup) {
		return &ValidationError{
			Step: StepFood,
			Reason: fmt.Sprintf("pickup date %s must be your last attended day or the day after (%s or %s)",
				f.PickupDate, event.FormatInput(candidates[0]), event.FormatInput(candidates[1])),
		}
	}
	return nil
}
