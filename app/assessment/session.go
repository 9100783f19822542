package assessment

import (
	"sync"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
)

// Session is one timed attempt at the skills test. It lives in memory for
// the duration of the attempt and is discarded after score extraction.
// Answer submissions for the same session are serialized by its mutex;
// last write wins per question index.
type Session struct {
	ID          string
	CandidateID string
	Field       string
	Questions   []models.Question
	StartedAt   time.Time
	Deadline    time.Time

	mu        sync.Mutex
	answers   map[int]string
	completed bool
	score     float64
}

func (s *Session) TotalQuestions() int {
	return len(s.Questions)
}

// IsExpired is a pure comparison against the stored deadline.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.Deadline)
}

// Remaining returns the time left on the clock, never negative.
func (s *Session) Remaining(now time.Time) time.Duration {
	if d := s.Deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Answered returns how many questions currently have an answer recorded.
func (s *Session) Answered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// Completed reports whether the session has been finalized.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

func (s *Session) answer(index int, choice string) error {
	if index < 0 || index >= len(s.Questions) {
		return ErrOutOfRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return ErrSessionFinalized
	}
	s.answers[index] = choice
	return nil
}

// finalize scores the session exactly once; later calls return the stored
// score. The second result is true on the scoring call.
func (s *Session) finalize() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return s.score, false
	}

	s.completed = true
	if len(s.Questions) == 0 {
		// Empty sample: no division, score stays zero.
		s.score = 0
		return s.score, true
	}

	correct := 0
	for i, q := range s.Questions {
		if s.answers[i] == q.CorrectAnswer {
			correct++
		}
	}
	s.score = 100 * float64(correct) / float64(len(s.Questions))
	return s.score, true
}
