package models

import "time"

// Question is one multiple-choice assessment question. Immutable once
// authored; owned by the question bank.
type Question struct {
	ID            string    `json:"id"`
	Field         string    `json:"field"`
	Prompt        string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}
