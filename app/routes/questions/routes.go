package questions

import (
	"database/sql"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupQuestionsRoutes wires the admin question-authoring endpoints.
func SetupQuestionsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/questions", auth.AuthMiddleware)
	api.Post("/", func(c *fiber.Ctx) error { return CreateQuestionAPI(c, db) })
	api.Get("/", func(c *fiber.Ctx) error { return ListQuestionsAPI(c, db) })
}
