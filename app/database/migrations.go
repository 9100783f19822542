package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			otp TEXT,
			otp_expiry TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS candidates (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			cnic TEXT NOT NULL DEFAULT '',
			current_address TEXT NOT NULL DEFAULT '',
			education TEXT NOT NULL DEFAULT '',
			last_salary TEXT NOT NULL DEFAULT '',
			expected_salary TEXT NOT NULL DEFAULT '',
			join_date TEXT NOT NULL DEFAULT '',
			why_hire_you TEXT NOT NULL DEFAULT '',
			position TEXT NOT NULL,
			experience TEXT NOT NULL DEFAULT '',
			references_info TEXT NOT NULL DEFAULT '',
			skills TEXT[] NOT NULL DEFAULT '{}',
			stage TEXT NOT NULL DEFAULT 'applied',
			score DOUBLE PRECISION,
			slot_id TEXT,
			slot_time TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			id UUID PRIMARY KEY,
			field TEXT NOT NULL,
			question TEXT NOT NULL,
			options TEXT[] NOT NULL,
			correct_answer TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_field ON questions (field)`,
		`CREATE TABLE IF NOT EXISTS interviews (
			id UUID PRIMARY KEY,
			candidate_id UUID NOT NULL,
			candidate_name TEXT NOT NULL,
			candidate_email TEXT NOT NULL,
			position TEXT NOT NULL,
			slot_id TEXT NOT NULL,
			slot_time TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_interviews_slot ON interviews (slot_id)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			company TEXT NOT NULL,
			location TEXT NOT NULL,
			salary TEXT NOT NULL,
			type TEXT NOT NULL,
			description TEXT NOT NULL,
			requirements TEXT NOT NULL,
			responsibilities TEXT NOT NULL,
			experience TEXT NOT NULL,
			education TEXT NOT NULL,
			application_deadline TIMESTAMPTZ NOT NULL,
			contact_email TEXT NOT NULL,
			benefits TEXT NOT NULL DEFAULT '',
			remote_work BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
