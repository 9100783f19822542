package services

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/assessment"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/calendar"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/pipeline"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/questionbank"
	"go.uber.org/zap"
)

type memCandidates struct {
	records map[string]*models.Candidate
}

func (s *memCandidates) Insert(c *models.Candidate) error {
	if c.ID == "" {
		c.ID = fmt.Sprintf("cand-%d", len(s.records)+1)
	}
	stored := *c
	s.records[c.ID] = &stored
	return nil
}

func (s *memCandidates) FindByID(id string) (*models.Candidate, error) {
	c, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	found := *c
	return &found, nil
}

func (s *memCandidates) Save(c *models.Candidate) error {
	stored := *c
	s.records[c.ID] = &stored
	return nil
}

type memInterviews struct{ records []*models.Interview }

func (s *memInterviews) Insert(iv *models.Interview) error {
	s.records = append(s.records, iv)
	return nil
}

func (s *memInterviews) ExistsForSlot(slotID string) (bool, error) { return false, nil }

type memQuestions struct{ pool []models.Question }

func (s *memQuestions) QuestionsByField(field string) ([]models.Question, error) {
	return s.pool, nil
}

type dropNotifier struct{}

func (dropNotifier) Send(to, subject, body string) error { return nil }

func TestSweepForceFinalizesExpiredSessions(t *testing.T) {
	pool := []models.Question{
		{ID: "q1", Field: "Software Engineer", Prompt: "p1", Options: []string{"a", "b"}, CorrectAnswer: "a"},
		{ID: "q2", Field: "Software Engineer", Prompt: "p2", Options: []string{"a", "b"}, CorrectAnswer: "a"},
	}
	bank := questionbank.New(&memQuestions{pool: pool}, rand.New(rand.NewSource(1)))
	eng := assessment.NewEngine(bank, assessment.Config{QuestionCount: 10, Duration: 10 * time.Minute}, nil)

	candidates := &memCandidates{records: make(map[string]*models.Candidate)}
	machine := pipeline.NewMachine(candidates, &memInterviews{}, calendar.New(5, time.UTC), dropNotifier{}, pipeline.Config{
		PassScore:      40,
		RecruiterEmail: "owner@example.com",
	}, nil)

	candidate, err := machine.SubmitApplication(pipeline.Application{
		Name: "Ayesha Khan", Email: "ayesha@example.com", Phone: "0300-1234567", Position: "Software Engineer",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := machine.BeginAssessment(candidate.ID); err != nil {
		t.Fatalf("begin assessment: %v", err)
	}

	start := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	session, err := eng.Start(candidate.ID, candidate.Position, start)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	// one right answer of two, then the candidate walks away
	if err := eng.Answer(session.ID, 0, session.Questions[0].CorrectAnswer); err != nil {
		t.Fatalf("answer: %v", err)
	}

	// before the deadline the sweep leaves the session alone
	SweepExpiredSessions(eng, machine, zap.NewNop(), start.Add(5*time.Minute))
	if _, err := eng.Get(session.ID); err != nil {
		t.Fatalf("sweep touched a live session: %v", err)
	}

	SweepExpiredSessions(eng, machine, zap.NewNop(), start.Add(11*time.Minute))

	if _, err := eng.Get(session.ID); err == nil {
		t.Fatal("expired session not discarded by sweep")
	}

	rec, _ := candidates.FindByID(candidate.ID)
	if rec.Score == nil || *rec.Score != 50 {
		t.Fatalf("swept score not recorded, got %v", rec.Score)
	}
	if rec.Stage != models.StageEligible {
		t.Fatalf("stage = %s, want eligible (50 >= 40)", rec.Stage)
	}
}
