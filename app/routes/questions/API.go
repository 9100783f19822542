package questions

import (
	"database/sql"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/database"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
	"github.com/gofiber/fiber/v2"
)

func CreateQuestionAPI(c *fiber.Ctx, db *sql.DB) error {
	type CreateRequest struct {
		Field         string   `json:"field"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Field == "" || req.Question == "" || len(req.Options) == 0 || req.CorrectAnswer == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
	}

	q := &models.Question{
		Field:         req.Field,
		Prompt:        req.Question,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := database.InsertQuestion(db, q); err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Question created successfully",
		"id":      q.ID,
	})
}

func ListQuestionsAPI(c *fiber.Ctx, db *sql.DB) error {
	var (
		qs  []models.Question
		err error
	)
	if field := c.Query("field"); field != "" {
		qs, err = database.QuestionsByField(db, field)
	} else {
		qs, err = database.AllQuestions(db)
	}
	if err != nil {
		return err
	}

	// Admin view includes the designated correct option, which the model
	// hides from candidate-facing JSON.
	items := make([]fiber.Map, 0, len(qs))
	for _, q := range qs {
		items = append(items, fiber.Map{
			"id":             q.ID,
			"field":          q.Field,
			"question":       q.Prompt,
			"options":        q.Options,
			"correct_answer": q.CorrectAnswer,
			"created_at":     q.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"questions": items})
}
