package main

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/assessment"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/calendar"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/config"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/database"
	applogger "github.com/Salman-Nadeem/Automate-Hiring-Process/app/logger"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/notify"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/pipeline"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/questionbank"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/recovery"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/routes/applications"
	assessmentroutes "github.com/Salman-Nadeem/Automate-Hiring-Process/app/routes/assessment"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/routes/auth"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/routes/interviews"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/routes/jobs"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/routes/questions"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

// apiErrorHandler maps core errors to a stable JSON envelope so clients can
// render precise messages per failure kind.
func apiErrorHandler(zlog *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		kind := "internal"
		message := err.Error()

		var ve *pipeline.ValidationError
		var fe *fiber.Error
		switch {
		case errors.As(err, &ve):
			code, kind = fiber.StatusBadRequest, "validation"
		case errors.Is(err, pipeline.ErrIllegalTransition):
			code, kind = fiber.StatusConflict, "illegal_transition"
		case errors.Is(err, pipeline.ErrNotEligible):
			code, kind = fiber.StatusConflict, "not_eligible"
		case errors.Is(err, pipeline.ErrNotFound):
			code, kind = fiber.StatusNotFound, "not_found"
		case errors.Is(err, assessment.ErrOutOfRange):
			code, kind = fiber.StatusBadRequest, "out_of_range"
		case errors.Is(err, assessment.ErrSessionNotFound):
			code, kind = fiber.StatusNotFound, "not_found"
		case errors.Is(err, assessment.ErrSessionFinalized):
			code, kind = fiber.StatusConflict, "illegal_transition"
		case errors.Is(err, recovery.ErrNotFound):
			code, kind = fiber.StatusNotFound, "not_found"
		case errors.Is(err, recovery.ErrInvalidOrExpired):
			code, kind = fiber.StatusBadRequest, "invalid_or_expired"
		case errors.As(err, &fe):
			code = fe.Code
			if code == fiber.StatusNotFound {
				kind = "not_found"
			}
		default:
			// Store failures are surfaced, never retried here; the detail
			// goes to the log, not the client.
			zlog.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
			kind, message = "store", "Database error"
		}

		return c.Status(code).JSON(fiber.Map{"error": message, "kind": kind})
	}
}

func main() {
	config.Load()

	zlog, err := applogger.New(os.Getenv("LOG_JSON") == "true", os.Getenv("DEBUG") == "true")
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zlog.Sync()

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()
	db := config.GetDB()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	cfg := config.AppConfig

	// Core wiring: stores -> bank/engine/calendar -> state machine
	bank := questionbank.New(&database.QuestionStore{DB: db}, nil)
	eng := assessment.NewEngine(bank, assessment.Config{
		QuestionCount: cfg.Hiring.QuestionCount,
		Duration:      cfg.Hiring.AssessmentDuration,
	}, zlog)
	cal := calendar.New(cfg.Hiring.SlotHorizonDays, time.Local)
	notifier := notify.NewAsync(notify.NewSMTP(cfg.SMTP), zlog)
	machine := pipeline.NewMachine(
		&database.CandidateStore{DB: db},
		&database.InterviewStore{DB: db},
		cal,
		notifier,
		pipeline.Config{
			PassScore:      cfg.Hiring.PassScore,
			RecruiterEmail: cfg.Hiring.RecruiterEmail,
		},
		zlog,
	)
	flow := recovery.New(&database.AccountStore{DB: db}, notifier, cfg.Hiring.OTPTTL, nil, zlog)

	// Background sweep for expired, un-finalized sessions
	services.StartScheduler(eng, machine, zlog)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler(zlog),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	auth.SetupAuthRoutes(app, db, flow)
	applications.SetupApplicationsRoutes(app, machine)
	assessmentroutes.SetupAssessmentRoutes(app, eng, machine)
	interviews.SetupInterviewsRoutes(app, machine, db)
	questions.SetupQuestionsRoutes(app, db)
	jobs.SetupJobsRoutes(app, db)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	zlog.Info("server starting", zap.String("port", cfg.Port))
	log.Fatal(app.Listen(":" + cfg.Port))
}
