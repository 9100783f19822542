package auth

import (
	"database/sql"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/recovery"
	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes wires account and recovery endpoints.
func SetupAuthRoutes(app *fiber.App, db *sql.DB, flow *recovery.Flow) {
	api := app.Group("/api/auth")

	api.Post("/signup", func(c *fiber.Ctx) error { return SignupAPI(c, db) })
	api.Post("/login", func(c *fiber.Ctx) error { return LoginAPI(c, db) })
	api.Post("/logout", LogoutAPI)

	api.Post("/forgot-password", func(c *fiber.Ctx) error { return ForgotPasswordAPI(c, flow) })
	api.Post("/verify-otp", func(c *fiber.Ctx) error { return VerifyOTPAPI(c, flow) })
	api.Post("/reset-password", func(c *fiber.Ctx) error { return ResetPasswordAPI(c, flow) })
}
