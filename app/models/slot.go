package models

import "time"

// Slot is a candidate-bookable interview time. Slots are generated fresh per
// request from the calendar; they are not a reserved resource pool.
type Slot struct {
	ID   string    `json:"id"`
	Time time.Time `json:"time"`
}
