// Package assessment runs timed skills-test sessions and scores them.
package assessment

import (
	"errors"
	"sync"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/questionbank"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrSessionNotFound means the session id is unknown or already discarded.
	ErrSessionNotFound = errors.New("assessment session not found")
	// ErrOutOfRange means the answer index is past the sampled question set.
	ErrOutOfRange = errors.New("question index out of range")
	// ErrSessionFinalized rejects answers arriving after finalization.
	ErrSessionFinalized = errors.New("assessment session already finalized")
)

// Config holds the assessment policy values.
type Config struct {
	QuestionCount int
	Duration      time.Duration
}

// Engine owns all live sessions. It performs no background timing of its
// own: the deadline is a stored timestamp compared against a caller-supplied
// now, so behavior is deterministic under test.
type Engine struct {
	bank *questionbank.Bank
	cfg  Config
	log  *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewEngine(bank *questionbank.Bank, cfg Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		bank:     bank,
		cfg:      cfg,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

// Start samples questions for the candidate's field and opens a session with
// deadline now + the configured duration. A field with a small pool yields a
// correspondingly small session, never an error. A candidate keeps at most
// one active session: an unfinished attempt is resumed, not replaced.
func (e *Engine) Start(candidateID, field string, now time.Time) (*Session, error) {
	if existing := e.activeForCandidate(candidateID); existing != nil {
		return existing, nil
	}

	questions, err := e.bank.Sample(field, e.cfg.QuestionCount)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:          uuid.New().String(),
		CandidateID: candidateID,
		Field:       field,
		Questions:   questions,
		StartedAt:   now,
		Deadline:    now.Add(e.cfg.Duration),
		answers:     make(map[int]string),
	}

	e.mu.Lock()
	e.sessions[s.ID] = s
	e.mu.Unlock()

	e.log.Info("assessment started",
		zap.String("session_id", s.ID),
		zap.String("candidate_id", candidateID),
		zap.String("field", field),
		zap.Int("questions", len(questions)),
		zap.Time("deadline", s.Deadline),
	)
	return s, nil
}

// Get returns the live session for id.
func (e *Engine) Get(id string) (*Session, error) {
	e.mu.RLock()
	s, ok := e.sessions[id]
	e.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Answer records or overwrites the choice for a question index. Re-answering
// is allowed any time before finalization; there is no forward-only rule.
func (e *Engine) Answer(id string, index int, choice string) error {
	s, err := e.Get(id)
	if err != nil {
		return err
	}
	return s.answer(index, choice)
}

// Finalize computes the percentage score and marks the session completed.
// Idempotent: repeated calls return the stored score without recomputation.
func (e *Engine) Finalize(id string) (float64, error) {
	s, err := e.Get(id)
	if err != nil {
		return 0, err
	}

	score, first := s.finalize()
	if first {
		e.log.Info("assessment finalized",
			zap.String("session_id", s.ID),
			zap.String("candidate_id", s.CandidateID),
			zap.Float64("score", score),
		)
	}
	return score, nil
}

// Discard drops a session once its score has been extracted.
func (e *Engine) Discard(id string) {
	e.mu.Lock()
	delete(e.sessions, id)
	e.mu.Unlock()
}

func (e *Engine) activeForCandidate(candidateID string) *Session {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, s := range e.sessions {
		if s.CandidateID == candidateID && !s.Completed() {
			return s
		}
	}
	return nil
}

// ExpiredSessions returns ids of sessions whose deadline has passed and which
// were never finalized. The background sweep feeds these back into Finalize.
func (e *Engine) ExpiredSessions(now time.Time) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var ids []string
	for id, s := range e.sessions {
		if s.IsExpired(now) && !s.Completed() {
			ids = append(ids, id)
		}
	}
	return ids
}
