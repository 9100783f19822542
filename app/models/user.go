package models

import "time"

// User is a recruiter/admin account. OTP and OTPExpiry hold the active
// recovery ticket, if any; at most one is live per account.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	OTP       *string    `json:"-"`
	OTPExpiry *time.Time `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
