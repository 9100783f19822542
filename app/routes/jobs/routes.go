package jobs

import (
	"database/sql"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupJobsRoutes wires the job-posting endpoints. The listing is public;
// posting and removal are admin-only.
func SetupJobsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/jobs")
	api.Get("/", func(c *fiber.Ctx) error { return ListJobsAPI(c, db) })
	api.Post("/", auth.AuthMiddleware, func(c *fiber.Ctx) error { return CreateJobAPI(c, db) })
	api.Delete("/:id", auth.AuthMiddleware, func(c *fiber.Ctx) error { return DeleteJobAPI(c, db) })
}
