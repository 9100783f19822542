package interviews

import (
	"database/sql"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/database"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/pipeline"
	"github.com/gofiber/fiber/v2"
)

func GetSlotsAPI(c *fiber.Ctx, machine *pipeline.Machine) error {
	slots, err := machine.RequestSchedule(c.Params("candidateID"), time.Now())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"slots": slots})
}

func ConfirmSlotAPI(c *fiber.Ctx, machine *pipeline.Machine) error {
	type ConfirmRequest struct {
		CandidateID string `json:"candidate_id"`
		SlotID      string `json:"slot_id"`
	}

	var req ConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	candidate, err := machine.ConfirmSlot(req.CandidateID, req.SlotID)
	if err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{
		"message":   "Interview scheduled successfully and emails sent!",
		"stage":     candidate.Stage,
		"slot_id":   candidate.SlotID,
		"slot_time": candidate.SlotTime,
	})
}

func ListInterviewsAPI(c *fiber.Ctx, db *sql.DB) error {
	interviews, err := database.AllInterviews(db)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"interviews": interviews})
}
