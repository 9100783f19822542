package auth

import (
	"database/sql"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/database"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/recovery"
	"github.com/gofiber/fiber/v2"
)

func SignupAPI(c *fiber.Ctx, db *sql.DB) error {
	type SignupRequest struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}

	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return c.Status(400).JSON(fiber.Map{"error": "All fields are required"})
	}
	if req.Password != req.ConfirmPassword {
		return c.Status(400).JSON(fiber.Map{"error": "Passwords do not match"})
	}

	existing, err := database.GetUserByEmail(db, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Email already in use"})
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{Name: req.Name, Email: req.Email, Password: hashed}
	if err := database.CreateUser(db, user); err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{"message": "User registered successfully"})
}

func LoginAPI(c *fiber.Ctx, db *sql.DB) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	user, err := database.GetUserByEmail(db, req.Email)
	if err != nil {
		return err
	}
	if user == nil || !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	// Set JWT as HTTP-only cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Logged out"})
}

func ForgotPasswordAPI(c *fiber.Ctx, flow *recovery.Flow) error {
	type ForgotPasswordRequest struct {
		Email string `json:"email"`
	}

	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := flow.IssueCode(req.Email, time.Now()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "OTP sent to your email"})
}

func VerifyOTPAPI(c *fiber.Ctx, flow *recovery.Flow) error {
	type VerifyOTPRequest struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}

	var req VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := flow.VerifyCode(req.Email, req.OTP, time.Now()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "OTP verified successfully"})
}

func ResetPasswordAPI(c *fiber.Ctx, flow *recovery.Flow) error {
	type ResetPasswordRequest struct {
		Email       string `json:"email"`
		NewPassword string `json:"new_password"`
	}

	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Email == "" || req.NewPassword == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing email or password"})
	}

	if err := flow.ResetPassword(req.Email, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password reset successful"})
}
