package assessment

import (
	"math"
	"time"

	engine "github.com/Salman-Nadeem/Automate-Hiring-Process/app/assessment"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/pipeline"
	"github.com/gofiber/fiber/v2"
)

func StartAssessmentAPI(c *fiber.Ctx, eng *engine.Engine, machine *pipeline.Machine) error {
	type StartRequest struct {
		ApplicationID string `json:"application_id"`
	}

	var req StartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	candidate, err := machine.BeginAssessment(req.ApplicationID)
	if err != nil {
		return err
	}

	now := time.Now()
	session, err := eng.Start(candidate.ID, candidate.Position, now)
	if err != nil {
		return err
	}

	// models.Question hides the correct answer from JSON, so the sampled
	// set can be returned as-is.
	return c.Status(201).JSON(fiber.Map{
		"session_id":        session.ID,
		"questions":         session.Questions,
		"total_questions":   session.TotalQuestions(),
		"deadline":          session.Deadline,
		"remaining_seconds": int(session.Remaining(now).Seconds()),
	})
}

func AssessmentStatusAPI(c *fiber.Ctx, eng *engine.Engine) error {
	session, err := eng.Get(c.Params("id"))
	if err != nil {
		return err
	}

	now := time.Now()
	return c.JSON(fiber.Map{
		"session_id":        session.ID,
		"total_questions":   session.TotalQuestions(),
		"answered":          session.Answered(),
		"deadline":          session.Deadline,
		"remaining_seconds": int(session.Remaining(now).Seconds()),
		"expired":           session.IsExpired(now),
	})
}

func SubmitAnswerAPI(c *fiber.Ctx, eng *engine.Engine) error {
	type AnswerRequest struct {
		Index  int    `json:"index"`
		Choice string `json:"choice"`
	}

	var req AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := eng.Answer(c.Params("id"), req.Index, req.Choice); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Answer recorded"})
}

func FinalizeAssessmentAPI(c *fiber.Ctx, eng *engine.Engine, machine *pipeline.Machine) error {
	id := c.Params("id")

	session, err := eng.Get(id)
	if err != nil {
		return err
	}

	score, err := eng.Finalize(id)
	if err != nil {
		return err
	}

	// The session is spent either way. A finalized session is invisible to
	// the expiry sweep, so leaving it behind on a gate error would pin it in
	// memory until restart.
	candidate, err := machine.CompleteAssessment(session.CandidateID, score)
	eng.Discard(id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"score": math.Round(score*100) / 100,
		"stage": candidate.Stage,
	})
}
