package database

import (
	"database/sql"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
)

// Thin adapters binding the core packages' store interfaces to the SQL
// query functions in this package.

type CandidateStore struct{ DB *sql.DB }

func (s *CandidateStore) Insert(c *models.Candidate) error { return InsertCandidate(s.DB, c) }
func (s *CandidateStore) FindByID(id string) (*models.Candidate, error) {
	return GetCandidateByID(s.DB, id)
}
func (s *CandidateStore) Save(c *models.Candidate) error { return SaveCandidate(s.DB, c) }

type InterviewStore struct{ DB *sql.DB }

func (s *InterviewStore) Insert(iv *models.Interview) error { return InsertInterview(s.DB, iv) }
func (s *InterviewStore) ExistsForSlot(slotID string) (bool, error) {
	return InterviewExistsForSlot(s.DB, slotID)
}

type QuestionStore struct{ DB *sql.DB }

func (s *QuestionStore) QuestionsByField(field string) ([]models.Question, error) {
	return QuestionsByField(s.DB, field)
}

type AccountStore struct{ DB *sql.DB }

func (s *AccountStore) FindByEmail(email string) (*models.User, error) {
	return GetUserByEmail(s.DB, email)
}
func (s *AccountStore) SetOTP(userID, code string, expiry time.Time) error {
	return SetUserOTP(s.DB, userID, code, expiry)
}
func (s *AccountStore) ClearOTP(userID string) error { return ClearUserOTP(s.DB, userID) }
func (s *AccountStore) UpdatePassword(userID, hashedPassword string) error {
	return UpdateUserPassword(s.DB, userID, hashedPassword)
}
