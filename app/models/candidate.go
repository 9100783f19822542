package models

import "time"

// Candidate is one job application moving through the pipeline. Created on
// submit, mutated only by pipeline transitions, never deleted by the core.
type Candidate struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	CNIC           string     `json:"cnic,omitempty"`
	CurrentAddress string     `json:"current_address,omitempty"`
	Education      string     `json:"education,omitempty"`
	LastSalary     string     `json:"last_salary,omitempty"`
	ExpectedSalary string     `json:"expected_salary,omitempty"`
	JoinDate       string     `json:"join_date,omitempty"`
	WhyHireYou     string     `json:"why_hire_you,omitempty"`
	Position       string     `json:"position"`
	Experience     string     `json:"experience,omitempty"`
	References     string     `json:"references,omitempty"`
	Skills         []string   `json:"skills,omitempty"`
	Stage          Stage      `json:"stage"`
	Score          *float64   `json:"score,omitempty"`
	SlotID         *string    `json:"slot_id,omitempty"`
	SlotTime       *time.Time `json:"slot_time,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
