package pipeline

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound means the candidate id is unknown.
	ErrNotFound = errors.New("candidate not found")
	// ErrIllegalTransition means the requested operation is not legal from
	// the candidate's current stage.
	ErrIllegalTransition = errors.New("illegal pipeline transition")
	// ErrNotEligible rejects scheduling for candidates outside the eligible
	// stage.
	ErrNotEligible = errors.New("candidate is not eligible for scheduling")
)

// ValidationError lists the request fields that were missing or carried a
// value that could not be used.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}
