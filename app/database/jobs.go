package database

import (
	"database/sql"
	"fmt"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
	"github.com/google/uuid"
)

const jobColumns = `id, title, company, location, salary, type, description,
				requirements, responsibilities, experience, education,
				application_deadline, contact_email, benefits, remote_work, created_at`

func InsertJob(db *sql.DB, j *models.Job) error {
	if j.ID == "" {
		j.ID = uuid.New().String()
	}
	query := `INSERT INTO jobs (id, title, company, location, salary, type, description,
			  requirements, responsibilities, experience, education,
			  application_deadline, contact_email, benefits, remote_work, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now())`
	_, err := db.Exec(query, j.ID, j.Title, j.Company, j.Location, j.Salary, j.Type,
		j.Description, j.Requirements, j.Responsibilities, j.Experience, j.Education,
		j.ApplicationDeadline, j.ContactEmail, j.Benefits, j.RemoteWork)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// AllJobs returns every posting, newest first, for the public listing.
func AllJobs(db *sql.DB) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("all jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var j models.Job
		err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Salary, &j.Type,
			&j.Description, &j.Requirements, &j.Responsibilities, &j.Experience, &j.Education,
			&j.ApplicationDeadline, &j.ContactEmail, &j.Benefits, &j.RemoteWork, &j.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// DeleteJob removes a posting and reports whether it existed.
func DeleteJob(db *sql.DB, id string) (bool, error) {
	res, err := db.Exec(`DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete job: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete job: %w", err)
	}
	return n > 0, nil
}
