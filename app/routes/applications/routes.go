package applications

import (
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/pipeline"
	"github.com/gofiber/fiber/v2"
)

// SetupApplicationsRoutes wires the candidate-facing application endpoints.
func SetupApplicationsRoutes(app *fiber.App, machine *pipeline.Machine) {
	api := app.Group("/api/applications")
	api.Post("/", func(c *fiber.Ctx) error { return SubmitApplicationAPI(c, machine) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetApplicationAPI(c, machine) })
}
