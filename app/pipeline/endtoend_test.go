package pipeline

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/assessment"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/questionbank"
)

type memQuestions struct {
	pools map[string][]models.Question
}

func (m *memQuestions) QuestionsByField(field string) ([]models.Question, error) {
	return m.pools[field], nil
}

// Full walk through the pipeline: apply, sit a three-question test, answer
// everything correctly, pass the gate, book the first offered slot.
func TestHiringPipelineEndToEnd(t *testing.T) {
	machine, _, interviews, notifier := newTestMachine(40)

	pool := []models.Question{
		{ID: "q1", Field: "Software Engineer", Prompt: "What is the capital of France?",
			Options: []string{"London", "Berlin", "Paris", "Madrid"}, CorrectAnswer: "Paris"},
		{ID: "q2", Field: "Software Engineer", Prompt: "Which programming language is React built with?",
			Options: []string{"Java", "Python", "JavaScript", "C++"}, CorrectAnswer: "JavaScript"},
		{ID: "q3", Field: "Software Engineer", Prompt: "What does HTML stand for?",
			Options: []string{"Hyper Text Markup Language", "High Tech Modern Language"}, CorrectAnswer: "Hyper Text Markup Language"},
	}
	bank := questionbank.New(&memQuestions{pools: map[string][]models.Question{"Software Engineer": pool}}, rand.New(rand.NewSource(3)))
	engine := assessment.NewEngine(bank, assessment.Config{QuestionCount: 10, Duration: 10 * time.Minute}, nil)

	candidate, err := machine.SubmitApplication(validApplication())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := machine.BeginAssessment(candidate.ID); err != nil {
		t.Fatalf("begin assessment: %v", err)
	}

	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	session, err := engine.Start(candidate.ID, candidate.Position, now)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if session.TotalQuestions() != 3 {
		t.Fatalf("bank has 3 questions, session sampled %d", session.TotalQuestions())
	}

	for i, q := range session.Questions {
		if err := engine.Answer(session.ID, i, q.CorrectAnswer); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	score, err := engine.Finalize(session.ID)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if score != 100 {
		t.Fatalf("score = %g, want 100", score)
	}

	candidate, err = machine.CompleteAssessment(candidate.ID, score)
	if err != nil {
		t.Fatalf("complete assessment: %v", err)
	}
	if candidate.Stage != models.StageEligible {
		t.Fatalf("stage = %s, want eligible", candidate.Stage)
	}
	engine.Discard(session.ID)

	slots, err := machine.RequestSchedule(candidate.ID, now)
	if err != nil {
		t.Fatalf("request schedule: %v", err)
	}
	if len(slots) != 10 {
		t.Fatalf("expected 10 slots, got %d", len(slots))
	}

	candidate, err = machine.ConfirmSlot(candidate.ID, slots[0].ID)
	if err != nil {
		t.Fatalf("confirm slot: %v", err)
	}
	if candidate.Stage != models.StageConfirmed {
		t.Fatalf("stage = %s, want confirmed", candidate.Stage)
	}
	if len(interviews.records) != 1 {
		t.Fatalf("expected 1 interview, got %d", len(interviews.records))
	}
	if len(notifier.sent) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifier.sent))
	}
}
