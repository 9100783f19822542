package database

import (
	"database/sql"
	"fmt"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

func InsertQuestion(db *sql.DB, q *models.Question) error {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	query := `INSERT INTO questions (id, field, question, options, correct_answer, created_at)
			  VALUES ($1, $2, $3, $4, $5, now())`
	_, err := db.Exec(query, q.ID, q.Field, q.Prompt, pq.Array(q.Options), q.CorrectAnswer)
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

// QuestionsByField returns the whole pool for a field. An unknown field
// yields an empty slice, not an error.
func QuestionsByField(db *sql.DB, field string) ([]models.Question, error) {
	query := `SELECT id, field, question, options, correct_answer, created_at
			  FROM questions WHERE field = $1`
	rows, err := db.Query(query, field)
	if err != nil {
		return nil, fmt.Errorf("questions by field: %w", err)
	}
	defer rows.Close()

	return collectQuestions(rows)
}

func AllQuestions(db *sql.DB) ([]models.Question, error) {
	query := `SELECT id, field, question, options, correct_answer, created_at
			  FROM questions ORDER BY field, created_at`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("all questions: %w", err)
	}
	defer rows.Close()

	return collectQuestions(rows)
}

func collectQuestions(rows *sql.Rows) ([]models.Question, error) {
	var questions []models.Question
	for rows.Next() {
		var q models.Question
		err := rows.Scan(&q.ID, &q.Field, &q.Prompt, pq.Array(&q.Options), &q.CorrectAnswer, &q.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
