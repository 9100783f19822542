package interviews

import (
	"database/sql"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/pipeline"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupInterviewsRoutes wires slot listing, booking and the recruiter view.
func SetupInterviewsRoutes(app *fiber.App, machine *pipeline.Machine, db *sql.DB) {
	api := app.Group("/api/interviews")
	api.Get("/slots/:candidateID", func(c *fiber.Ctx) error { return GetSlotsAPI(c, machine) })
	api.Post("/", func(c *fiber.Ctx) error { return ConfirmSlotAPI(c, machine) })
	api.Get("/", auth.AuthMiddleware, func(c *fiber.Ctx) error { return ListInterviewsAPI(c, db) })
}
