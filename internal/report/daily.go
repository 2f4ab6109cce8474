package report

import (
	"time"

	"github.com/satram-seva/registration-api/internal/event"
	"github.com/satram-seva/registration-api/internal/models"
)

// GenderCount splits a person count into the two report buckets.
type GenderCount struct {
	Male   int `json:"male"`
	Female int `json:"female"`
	Total  int `json:"total"`
}

// add counts one person. The report has only two gender columns, so
// anything that is not Female, including "Other", lands in the male
// bucket pending a product decision on a third column.
func (g *GenderCount) add(gender models.Gender) {
	if gender == models.GenderFemale {
		g.Female++
	} else {
		g.Male++
	}
	g.Total++
}

// DailyStat is one row of the daily report.
type DailyStat struct {
	Label         string      `json:"label"`
	Date          string      `json:"date"`
	Forms         int         `json:"forms"`
	Participants  GenderCount `json:"participants"`
	Accommodation GenderCount `json:"accommodation"`
	FoodPackets   int         `json:"foodPackets"`
}

// Summary backs the dashboard cards above the table.
type Summary struct {
	Registrations       int `json:"registrations"`
	Guests              int `json:"guests"`
	Participants        int `json:"participants"`
	AccommodationGroups int `json:"accommodationGroups"`
	FoodPackets         int `json:"foodPackets"`
}

// BuildDaily sweeps every registration against every calendar day. Per
// day it counts: forms covering the day, persons attending (primary plus
// guests), persons accommodated that night (half-open interval, the
// check-out night itself excluded) and food packets picked up. A full
// O(registrations x days) pass; the admin view always reloads the whole
// snapshot, so nothing incremental is needed.
func BuildDaily(days []event.Day, regs []models.Registration) []DailyStat {
	stats := make([]DailyStat, len(days))
	dates := make([]time.Time, len(days))
	for i, d := range days {
		parsed, err := event.ParseLabel(d.Label)
		if err == nil {
			dates[i] = parsed
			stats[i].Date = event.FormatInput(parsed)
		}
		stats[i].Label = d.Label
	}

	for _, reg := range regs {
		people := reg.People()

		attending := make(map[string]bool, len(reg.AttendingDates))
		for _, label := range reg.AttendingDates {
			attending[label] = true
		}
		for i, d := range days {
			if !attending[d.Label] {
				continue
			}
			stats[i].Forms++
			for _, p := range people {
				stats[i].Participants.add(p.Gender)
			}
		}

		acc := reg.Accommodation
		if acc.Required && acc.CheckInDate != "" && acc.CheckOutDate != "" {
			checkIn, inErr := event.ParseInput(acc.CheckInDate)
			checkOut, outErr := event.ParseInput(acc.CheckOutDate)
			if inErr == nil && outErr == nil {
				selected := selectedMembers(people, acc.MemberIDs)
				for i := range days {
					day := dates[i]
					if day.IsZero() {
						continue
					}
					if !day.Before(checkIn) && day.Before(checkOut) {
						for _, p := range selected {
							stats[i].Accommodation.add(p.Gender)
						}
					}
				}
			}
		}

		if reg.Food.TakeawayRequired && reg.Food.PickupDate != "" {
			pickup, err := event.ParseInput(reg.Food.PickupDate)
			if err == nil {
				for i := range days {
					if !dates[i].IsZero() && dates[i].Equal(pickup) {
						stats[i].FoodPackets += reg.Food.PacketCount
					}
				}
			}
		}
	}

	return stats
}

// BuildSummary totals the dashboard cards over all registrations.
func BuildSummary(regs []models.Registration) Summary {
	var s Summary
	s.Registrations = len(regs)
	for _, reg := range regs {
		s.Guests += len(reg.Guests)
		if reg.Accommodation.Required {
			s.AccommodationGroups++
		}
		if reg.Food.TakeawayRequired {
			s.FoodPackets += reg.Food.PacketCount
		}
	}
	s.Participants = s.Registrations + s.Guests
	return s
}

func selectedMembers(people []models.Guest, memberIDs []string) []models.Guest {
	ids := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		ids[id] = true
	}
	var selected []models.Guest
	for _, p := range people {
		if ids[p.ID] {
			selected = append(selected, p)
		}
	}
	return selected
}
