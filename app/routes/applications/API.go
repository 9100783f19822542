package applications

import (
	"math"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/pipeline"
	"github.com/gofiber/fiber/v2"
)

func SubmitApplicationAPI(c *fiber.Ctx, machine *pipeline.Machine) error {
	var req pipeline.Application
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	candidate, err := machine.SubmitApplication(req)
	if err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{
		"success":        true,
		"message":        "Application submitted successfully!",
		"application_id": candidate.ID,
		"stage":          candidate.Stage,
	})
}

func GetApplicationAPI(c *fiber.Ctx, machine *pipeline.Machine) error {
	candidate, err := machine.Candidate(c.Params("id"))
	if err != nil {
		return err
	}

	resp := fiber.Map{
		"id":       candidate.ID,
		"name":     candidate.Name,
		"position": candidate.Position,
		"stage":    candidate.Stage,
		"terminal": candidate.Stage.Terminal(),
	}
	if candidate.Score != nil {
		resp["score"] = math.Round(*candidate.Score*100) / 100
	}
	if candidate.SlotID != nil {
		resp["slot_id"] = *candidate.SlotID
		resp["slot_time"] = candidate.SlotTime
	}
	return c.JSON(resp)
}
