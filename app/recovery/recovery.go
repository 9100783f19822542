// Package recovery issues, verifies and expires one-time password-reset
// codes.
package recovery

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/notify"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrNotFound means no account exists for the email.
	ErrNotFound = errors.New("account not found")
	// ErrInvalidOrExpired covers a missing code, a mismatch and a code past
	// its expiry.
	ErrInvalidOrExpired = errors.New("invalid or expired code")
)

// AccountStore is the slice of user persistence the flow needs. FindByEmail
// returns (nil, nil) when no account exists.
type AccountStore interface {
	FindByEmail(email string) (*models.User, error)
	SetOTP(userID, code string, expiry time.Time) error
	ClearOTP(userID string) error
	UpdatePassword(userID, hashedPassword string) error
}

// Flow runs the account-recovery lifecycle. Each account holds at most one
// active code; issuing a new one supersedes the old.
type Flow struct {
	store    AccountStore
	notifier notify.Notifier
	ttl      time.Duration
	log      *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// New builds a flow with the given code lifetime. rng may be nil; tests pass
// a seeded source.
func New(store AccountStore, notifier notify.Notifier, ttl time.Duration, rng *rand.Rand, log *zap.Logger) *Flow {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Flow{store: store, notifier: notifier, ttl: ttl, rng: rng, log: log}
}

// IssueCode attaches a fresh 6-digit code to the account, valid for the
// configured window, and emails it to the address on file.
func (f *Flow) IssueCode(email string, now time.Time) error {
	user, err := f.store.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	code := f.generateCode()
	expiry := now.Add(f.ttl)
	if err := f.store.SetOTP(user.ID, code, expiry); err != nil {
		return err
	}

	body := fmt.Sprintf("Your OTP is: %s", code)
	if err := f.notifier.Send(user.Email, "Your OTP Code", body); err != nil {
		f.log.Warn("otp delivery failed", zap.String("email", user.Email), zap.Error(err))
	}

	f.log.Info("recovery code issued", zap.String("user_id", user.ID), zap.Time("expiry", expiry))
	return nil
}

// VerifyCode checks the submitted code against the active one. The code is
// single-use: success clears it. A code is still valid at its exact expiry
// instant and invalid any moment after.
func (f *Flow) VerifyCode(email, submitted string, now time.Time) error {
	user, err := f.store.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	if user.OTP == nil || user.OTPExpiry == nil {
		return ErrInvalidOrExpired
	}
	if *user.OTP != submitted || now.After(*user.OTPExpiry) {
		return ErrInvalidOrExpired
	}

	if err := f.store.ClearOTP(user.ID); err != nil {
		return err
	}
	f.log.Info("recovery code verified", zap.String("user_id", user.ID))
	return nil
}

// ResetPassword stores a bcrypt hash of the new secret. It is intentionally
// not gated on a verified code, matching the observed reset flow; see
// DESIGN.md before tightening this.
func (f *Flow) ResetPassword(email, newSecret string) error {
	user, err := f.store.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newSecret), 14)
	if err != nil {
		return err
	}
	if err := f.store.UpdatePassword(user.ID, string(hashed)); err != nil {
		return err
	}

	f.log.Info("password reset", zap.String("user_id", user.ID))
	return nil
}

// generateCode draws a uniform 6-digit code in [100000, 999999].
func (f *Flow) generateCode() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fmt.Sprintf("%06d", 100000+f.rng.Intn(900000))
}
