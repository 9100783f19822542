package models

import "time"

// Job is a posted opening shown on the public listing. Candidates apply
// against the position title.
type Job struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Company             string    `json:"company"`
	Location            string    `json:"location"`
	Salary              string    `json:"salary"`
	Type                string    `json:"type"`
	Description         string    `json:"description"`
	Requirements        string    `json:"requirements"`
	Responsibilities    string    `json:"responsibilities"`
	Experience          string    `json:"experience"`
	Education           string    `json:"education"`
	ApplicationDeadline time.Time `json:"application_deadline"`
	ContactEmail        string    `json:"contact_email"`
	Benefits            string    `json:"benefits"`
	RemoteWork          bool      `json:"remote_work"`
	CreatedAt           time.Time `json:"created_at"`
}
