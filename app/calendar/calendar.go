// Package calendar generates candidate-bookable interview slots.
package calendar

import (
	"fmt"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
)

// TimeOfDay is a wall-clock interview time offered every bookable day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Calendar produces interview slots for a fixed future horizon. It is a pure
// function of "now" and its configuration; nothing records which slots were
// taken, so the same label can be offered to multiple candidates.
type Calendar struct {
	HorizonDays int
	DailyTimes  []TimeOfDay
	Location    *time.Location
}

// New returns a calendar with the standard policy: the next five calendar
// days, interviews at 10:00 and 14:00 local time.
func New(horizonDays int, loc *time.Location) *Calendar {
	if horizonDays <= 0 {
		horizonDays = 5
	}
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{
		HorizonDays: horizonDays,
		DailyTimes:  []TimeOfDay{{Hour: 10}, {Hour: 14}},
		Location:    loc,
	}
}

// AvailableSlots lists one slot per daily time for each of the next
// HorizonDays calendar days, starting tomorrow. Slot ids are stable:
// "2006-01-02-15:04".
func (c *Calendar) AvailableSlots(now time.Time) []models.Slot {
	now = now.In(c.Location)
	slots := make([]models.Slot, 0, c.HorizonDays*len(c.DailyTimes))

	for day := 1; day <= c.HorizonDays; day++ {
		date := now.AddDate(0, 0, day)
		for _, t := range c.DailyTimes {
			at := time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, c.Location)
			slots = append(slots, models.Slot{
				ID:   SlotID(at),
				Time: at,
			})
		}
	}
	return slots
}

// SlotID formats the stable identifier for a slot time.
func SlotID(at time.Time) string {
	return fmt.Sprintf("%s-%02d:%02d", at.Format("2006-01-02"), at.Hour(), at.Minute())
}

// ParseSlotID resolves a slot identifier back to its absolute time.
func ParseSlotID(id string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	at, err := time.ParseInLocation("2006-01-02-15:04", id, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot id %q: %w", id, err)
	}
	return at, nil
}
