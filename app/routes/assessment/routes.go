package assessment

import (
	engine "github.com/Salman-Nadeem/Automate-Hiring-Process/app/assessment"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/pipeline"
	"github.com/gofiber/fiber/v2"
)

// SetupAssessmentRoutes wires the timed skills-test endpoints.
func SetupAssessmentRoutes(app *fiber.App, eng *engine.Engine, machine *pipeline.Machine) {
	api := app.Group("/api/assessment")
	api.Post("/start", func(c *fiber.Ctx) error { return StartAssessmentAPI(c, eng, machine) })
	api.Get("/:id", func(c *fiber.Ctx) error { return AssessmentStatusAPI(c, eng) })
	api.Post("/:id/answers", func(c *fiber.Ctx) error { return SubmitAnswerAPI(c, eng) })
	api.Post("/:id/finalize", func(c *fiber.Ctx) error { return FinalizeAssessmentAPI(c, eng, machine) })
}
