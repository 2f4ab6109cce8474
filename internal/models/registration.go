package models

import (
	"time"

	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
)

// Participant is the primary registrant. The mobile number doubles as the
// natural key of the whole registration.
type Participant struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Age      int    `json:"age"`
	Gender   Gender `json:"gender"`
	Mobile   string `json:"mobile"`
	City     string `json:"city"`
}

type Guest struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Age      int    `json:"age"`
	Gender   Gender `json:"gender"`
}

// Accommodation holds the stay request. Dates are stored as YYYY-MM-DD
// strings and times as HH:MM, matching the form inputs.
type Accommodation struct {
	Required     bool     `json:"required"`
	MemberIDs    []string `json:"memberIds" gorm:"serializer:json"`
	CheckInDate  string   `json:"checkInDate"`
	CheckInTime  string   `json:"checkInTime"`
	CheckOutDate string   `json:"checkOutDate"`
	CheckOutTime string   `json:"checkOutTime"`
}

type Food struct {
	TakeawayRequired bool   `json:"takeawayRequired"`
	PacketCount      int    `json:"packetCount"`
	PickupDate       string `json:"pickupDate"`
	PickupTime       string `json:"pickupTime"`
}

// Registration is the aggregate root for one submission. Mobile holds the
// normalized (digits-only) number and is unique across the table; a later
// write with the same mobile overwrites the earlier one.
type Registration struct {
	gorm.Model
	RegistrationID string        `json:"id" gorm:"uniqueIndex"`
	Mobile         string        `json:"-" gorm:"uniqueIndex"`
	SubmittedAt    time.Time     `json:"submissionDate"`
	Primary        Participant   `json:"primaryParticipant" gorm:"embedded;embeddedPrefix:primary_"`
	AttendingDates []string      `json:"attendingDates" gorm:"serializer:json"`
	Guests         []Guest       `json:"additionalGuests" gorm:"serializer:json"`
	Accommodation  Accommodation `json:"accommodation" gorm:"embedded;embeddedPrefix:stay_"`
	Food           Food          `json:"food" gorm:"embedded;embeddedPrefix:food_"`
	Status         Status        `json:"status"`
}

// People returns the primary participant and every guest as one slice,
// the unit the daily report counts over.
func (r *Registration) People() []Guest {
	people := make([]Guest, 0, len(r.Guests)+1)
	people = append(people, Guest{
		ID:       r.Primary.ID,
		FullName: r.Primary.FullName,
		Age:      r.Primary.Age,
		Gender:   r.Primary.Gender,
	})
	people = append(people, r.Guests...)
	return people
}
