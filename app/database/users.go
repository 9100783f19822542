package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
	"github.com/google/uuid"
)

// GetUserByEmail returns the user for email, or nil when no account exists.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password, otp, otp_expiry, created_at, updated_at
			  FROM users WHERE email = $1`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.OTP, &user.OTPExpiry, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func CreateUser(db *sql.DB, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	query := `INSERT INTO users (id, name, email, password, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, now(), now())`
	if _, err := db.Exec(query, user.ID, user.Name, user.Email, user.Password); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = now() WHERE id = $2`
	if _, err := db.Exec(query, hashedPassword, userID); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	return nil
}

// SetUserOTP replaces any prior recovery code with a fresh one.
func SetUserOTP(db *sql.DB, userID, code string, expiry time.Time) error {
	query := `UPDATE users SET otp = $1, otp_expiry = $2, updated_at = now() WHERE id = $3`
	if _, err := db.Exec(query, code, expiry, userID); err != nil {
		return fmt.Errorf("set user otp: %w", err)
	}
	return nil
}

// ClearUserOTP consumes the active recovery code.
func ClearUserOTP(db *sql.DB, userID string) error {
	query := `UPDATE users SET otp = NULL, otp_expiry = NULL, updated_at = now() WHERE id = $1`
	if _, err := db.Exec(query, userID); err != nil {
		return fmt.Errorf("clear user otp: %w", err)
	}
	return nil
}
