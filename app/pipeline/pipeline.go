// Package pipeline advances candidates through the hiring stages and
// enforces the gating rules between them.
package pipeline

import (
	"fmt"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/calendar"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/notify"
	"go.uber.org/zap"
)

const meetingLink = "https://meet.example.com/interview-123"

// CandidateStore is the record store the machine reads and writes. Find
// returns (nil, nil) when the id is unknown; absence is not an error.
type CandidateStore interface {
	Insert(c *models.Candidate) error
	FindByID(id string) (*models.Candidate, error)
	Save(c *models.Candidate) error
}

// InterviewStore keeps confirmed bookings for the recruiter's overview.
type InterviewStore interface {
	Insert(iv *models.Interview) error
	ExistsForSlot(slotID string) (bool, error)
}

// Config holds the gate policy. PassScore is the only place the threshold
// lives; callers must not carry their own copy of it.
type Config struct {
	PassScore      float64
	RecruiterEmail string
}

// Machine is the candidate progression state machine. Stages only move
// forward; rejected and confirmed are terminal.
type Machine struct {
	candidates CandidateStore
	interviews InterviewStore
	cal        *calendar.Calendar
	notifier   notify.Notifier
	cfg        Config
	log        *zap.Logger
}

func NewMachine(candidates CandidateStore, interviews InterviewStore, cal *calendar.Calendar, notifier notify.Notifier, cfg Config, log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine{
		candidates: candidates,
		interviews: interviews,
		cal:        cal,
		notifier:   notifier,
		cfg:        cfg,
		log:        log,
	}
}

// Application carries the submitted form fields.
type Application struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	CNIC           string   `json:"cnic"`
	CurrentAddress string   `json:"current_address"`
	Education      string   `json:"education"`
	LastSalary     string   `json:"last_salary"`
	ExpectedSalary string   `json:"expected_salary"`
	JoinDate       string   `json:"join_date"`
	WhyHireYou     string   `json:"why_hire_you"`
	Position       string   `json:"position"`
	Experience     string   `json:"experience"`
	References     string   `json:"references"`
	Skills         []string `json:"skills"`
}

// SubmitApplication validates the identity and contact fields and creates
// the candidate in the applied stage.
func (m *Machine) SubmitApplication(app Application) (*models.Candidate, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", app.Name},
		{"email", app.Email},
		{"phone", app.Phone},
		{"position", app.Position},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	c := &models.Candidate{
		Name:           app.Name,
		Email:          app.Email,
		Phone:          app.Phone,
		CNIC:           app.CNIC,
		CurrentAddress: app.CurrentAddress,
		Education:      app.Education,
		LastSalary:     app.LastSalary,
		ExpectedSalary: app.ExpectedSalary,
		JoinDate:       app.JoinDate,
		WhyHireYou:     app.WhyHireYou,
		Position:       app.Position,
		Experience:     app.Experience,
		References:     app.References,
		Skills:         app.Skills,
		Stage:          models.StageApplied,
	}
	if err := m.candidates.Insert(c); err != nil {
		return nil, err
	}

	m.log.Info("application submitted",
		zap.String("candidate_id", c.ID),
		zap.String("position", c.Position),
	)
	return c, nil
}

// Candidate loads a candidate or reports ErrNotFound.
func (m *Machine) Candidate(id string) (*models.Candidate, error) {
	c, err := m.candidates.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// BeginAssessment moves an applied candidate to tested when the skills test
// starts. A candidate already in tested stays there; anyone further along
// cannot take the test again.
func (m *Machine) BeginAssessment(id string) (*models.Candidate, error) {
	c, err := m.Candidate(id)
	if err != nil {
		return nil, err
	}

	switch c.Stage {
	case models.StageApplied:
		c.Stage = models.StageTested
		if err := m.candidates.Save(c); err != nil {
			return nil, err
		}
	case models.StageTested:
		// retaking an unfinished attempt
	default:
		return nil, ErrIllegalTransition
	}
	return c, nil
}

// CompleteAssessment records the score, moves the candidate to scored and
// immediately applies the gate: score >= PassScore (inclusive) is eligible,
// anything below is rejected, a terminal stage.
func (m *Machine) CompleteAssessment(id string, score float64) (*models.Candidate, error) {
	c, err := m.Candidate(id)
	if err != nil {
		return nil, err
	}

	if c.Stage != models.StageApplied && c.Stage != models.StageTested {
		return nil, ErrIllegalTransition
	}

	c.Score = &score
	c.Stage = models.StageScored
	if score >= m.cfg.PassScore {
		c.Stage = models.StageEligible
	} else {
		c.Stage = models.StageRejected
	}
	if err := m.candidates.Save(c); err != nil {
		return nil, err
	}

	m.log.Info("assessment gated",
		zap.String("candidate_id", c.ID),
		zap.Float64("score", score),
		zap.Float64("threshold", m.cfg.PassScore),
		zap.String("stage", string(c.Stage)),
	)
	return c, nil
}

// RequestSchedule returns the bookable slots and moves an eligible candidate
// to scheduled. A scheduled candidate may ask again for a fresh list; anyone
// else is turned away.
func (m *Machine) RequestSchedule(id string, now time.Time) ([]models.Slot, error) {
	c, err := m.Candidate(id)
	if err != nil {
		return nil, err
	}
	switch c.Stage {
	case models.StageEligible:
		c.Stage = models.StageScheduled
		if err := m.candidates.Save(c); err != nil {
			return nil, err
		}
	case models.StageScheduled:
		// picking a different slot before confirming
	default:
		return nil, ErrNotEligible
	}
	return m.cal.AvailableSlots(now), nil
}

// ConfirmSlot books the chosen slot and moves the candidate to confirmed,
// then notifies candidate and recruiter. An eligible candidate who skipped
// the slot listing may confirm directly. Notification failures never roll
// back the transition. Slots
// carry no reservation: a label another candidate already booked is logged
// at warn level but still accepted.
func (m *Machine) ConfirmSlot(id, slotID string) (*models.Candidate, error) {
	c, err := m.Candidate(id)
	if err != nil {
		return nil, err
	}
	if c.Stage != models.StageEligible && c.Stage != models.StageScheduled {
		return nil, ErrNotEligible
	}

	slotTime, err := calendar.ParseSlotID(slotID, m.cal.Location)
	if err != nil {
		return nil, &ValidationError{Invalid: []string{"slot_id"}}
	}

	if taken, err := m.interviews.ExistsForSlot(slotID); err != nil {
		return nil, err
	} else if taken {
		m.log.Warn("slot label already booked, accepting anyway",
			zap.String("slot_id", slotID),
			zap.String("candidate_id", c.ID),
		)
	}

	iv := &models.Interview{
		CandidateID:    c.ID,
		CandidateName:  c.Name,
		CandidateEmail: c.Email,
		Position:       c.Position,
		SlotID:         slotID,
		SlotTime:       slotTime,
	}
	if err := m.interviews.Insert(iv); err != nil {
		return nil, err
	}

	c.SlotID = &slotID
	c.SlotTime = &slotTime
	c.Stage = models.StageConfirmed
	if err := m.candidates.Save(c); err != nil {
		return nil, err
	}

	m.notifyBooking(c, slotTime)

	m.log.Info("interview confirmed",
		zap.String("candidate_id", c.ID),
		zap.String("slot_id", slotID),
	)
	return c, nil
}

func (m *Machine) notifyBooking(c *models.Candidate, slotTime time.Time) {
	when := slotTime.Format("January 2, 2006 3:04 PM")

	candidateBody := fmt.Sprintf(
		"Hello %s,\n\nYour interview for %s is scheduled on %s.\nJoin link: %s\n\nGood Luck!",
		c.Name, c.Position, when, meetingLink,
	)
	if err := m.notifier.Send(c.Email, "Your Interview is Scheduled", candidateBody); err != nil {
		m.log.Warn("candidate notification failed", zap.String("candidate_id", c.ID), zap.Error(err))
	}

	recruiterBody := fmt.Sprintf(
		"New Interview Scheduled\n\nCandidate: %s\nEmail: %s\nPosition: %s\nInterview Date: %s",
		c.Name, c.Email, c.Position, when,
	)
	subject := "New Interview Scheduled: " + c.Name
	if err := m.notifier.Send(m.cfg.RecruiterEmail, subject, recruiterBody); err != nil {
		m.log.Warn("recruiter notification failed", zap.String("candidate_id", c.ID), zap.Error(err))
	}
}
