package models

import "time"

// Interview is a confirmed booking, kept for the recruiter's overview.
type Interview struct {
	ID             string    `json:"id"`
	CandidateID    string    `json:"candidate_id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	Position       string    `json:"position"`
	SlotID         string    `json:"slot_id"`
	SlotTime       time.Time `json:"slot_time"`
	CreatedAt      time.Time `json:"created_at"`
}
