package database

import (
	"database/sql"
	"fmt"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
	"github.com/google/uuid"
)

func InsertInterview(db *sql.DB, iv *models.Interview) error {
	if iv.ID == "" {
		iv.ID = uuid.New().String()
	}
	query := `INSERT INTO interviews (id, candidate_id, candidate_name, candidate_email,
			position, slot_id, slot_time, created_at)
		  VALUES ($1, $2, $3, $4, $5, $6, $7, now())`
	_, err := db.Exec(query, iv.ID, iv.CandidateID, iv.CandidateName, iv.CandidateEmail,
		iv.Position, iv.SlotID, iv.SlotTime)
	if err != nil {
		return fmt.Errorf("insert interview: %w", err)
	}
	return nil
}

// InterviewExistsForSlot reports whether a booking already carries the slot
// label. Slots are not reserved; this only feeds a collision warning.
func InterviewExistsForSlot(db *sql.DB, slotID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM interviews WHERE slot_id = $1)`
	if err := db.QueryRow(query, slotID).Scan(&exists); err != nil {
		return false, fmt.Errorf("interview exists for slot: %w", err)
	}
	return exists, nil
}

func AllInterviews(db *sql.DB) ([]models.Interview, error) {
	query := `SELECT id, candidate_id, candidate_name, candidate_email, position,
			slot_id, slot_time, created_at
		  FROM interviews ORDER BY slot_time`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("all interviews: %w", err)
	}
	defer rows.Close()

	var interviews []models.Interview
	for rows.Next() {
		var iv models.Interview
		err := rows.Scan(&iv.ID, &iv.CandidateID, &iv.CandidateName, &iv.CandidateEmail,
			&iv.Position, &iv.SlotID, &iv.SlotTime, &iv.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan interview: %w", err)
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}
