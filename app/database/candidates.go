package database

import (
	"database/sql"
	"fmt"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const candidateColumns = `id, name, email, phone, cnic, current_address, education,
	last_salary, expected_salary, join_date, why_hire_you, position, experience,
	references_info, skills, stage, score, slot_id, slot_time, created_at, updated_at`

func scanCandidate(row *sql.Row) (*models.Candidate, error) {
	c := &models.Candidate{}
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.CNIC, &c.CurrentAddress, &c.Education,
		&c.LastSalary, &c.ExpectedSalary, &c.JoinDate, &c.WhyHireYou, &c.Position,
		&c.Experience, &c.References, pq.Array(&c.Skills), &c.Stage, &c.Score,
		&c.SlotID, &c.SlotTime, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func InsertCandidate(db *sql.DB, c *models.Candidate) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `INSERT INTO candidates (id, name, email, phone, cnic, current_address,
			education, last_salary, expected_salary, join_date, why_hire_you, position,
			experience, references_info, skills, stage, created_at, updated_at)
		  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now(), now())`
	_, err := db.Exec(query,
		c.ID, c.Name, c.Email, c.Phone, c.CNIC, c.CurrentAddress, c.Education,
		c.LastSalary, c.ExpectedSalary, c.JoinDate, c.WhyHireYou, c.Position,
		c.Experience, c.References, pq.Array(c.Skills), c.Stage,
	)
	if err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

// GetCandidateByID returns the candidate, or nil when the id is unknown.
func GetCandidateByID(db *sql.DB, id string) (*models.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	c, err := scanCandidate(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return c, nil
}

// SaveCandidate persists the mutable pipeline fields of the candidate.
func SaveCandidate(db *sql.DB, c *models.Candidate) error {
	query := `UPDATE candidates
		  SET stage = $1, score = $2, slot_id = $3, slot_time = $4, updated_at = now()
		  WHERE id = $5`
	if _, err := db.Exec(query, c.Stage, c.Score, c.SlotID, c.SlotTime, c.ID); err != nil {
		return fmt.Errorf("save candidate: %w", err)
	}
	return nil
}

// CountCandidatesByStage returns the pipeline stage distribution.
func CountCandidatesByStage(db *sql.DB) (map[models.Stage]int, error) {
	rows, err := db.Query(`SELECT stage, COUNT(*) FROM candidates GROUP BY stage`)
	if err != nil {
		return nil, fmt.Errorf("count candidates by stage: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Stage]int)
	for rows.Next() {
		var stage models.Stage
		var n int
		if err := rows.Scan(&stage, &n); err != nil {
			return nil, fmt.Errorf("count candidates by stage: %w", err)
		}
		counts[stage] = n
	}
	return counts, rows.Err()
}
