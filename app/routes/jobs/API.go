package jobs

import (
	"database/sql"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/database"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
	"github.com/gofiber/fiber/v2"
)

func CreateJobAPI(c *fiber.Ctx, db *sql.DB) error {
	type CreateRequest struct {
		Title               string `json:"title"`
		Company             string `json:"company"`
		Location            string `json:"location"`
		Salary              string `json:"salary"`
		Type                string `json:"type"`
		Description         string `json:"description"`
		Requirements        string `json:"requirements"`
		Responsibilities    string `json:"responsibilities"`
		Experience          string `json:"experience"`
		Education           string `json:"education"`
		ApplicationDeadline string `json:"application_deadline"`
		ContactEmail        string `json:"contact_email"`
		Benefits            string `json:"benefits"`
		RemoteWork          bool   `json:"remote_work"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	for _, v := range []string{
		req.Title, req.Company, req.Location, req.Salary, req.Type,
		req.Description, req.Requirements, req.Responsibilities,
		req.Experience, req.Education, req.ApplicationDeadline, req.ContactEmail,
	} {
		if v == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
		}
	}

	deadline, err := parseDeadline(req.ApplicationDeadline)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid application deadline"})
	}

	j := &models.Job{
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		Salary:              req.Salary,
		Type:                req.Type,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Experience:          req.Experience,
		Education:           req.Education,
		ApplicationDeadline: deadline,
		ContactEmail:        req.ContactEmail,
		Benefits:            req.Benefits,
		RemoteWork:          req.RemoteWork,
	}
	if err := database.InsertJob(db, j); err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Job posted successfully",
		"job":     j,
	})
}

func ListJobsAPI(c *fiber.Ctx, db *sql.DB) error {
	jobs, err := database.AllJobs(db)
	if err != nil {
		return err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return c.JSON(jobs)
}

func DeleteJobAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")

	deleted, err := database.DeleteJob(db, id)
	if err != nil {
		return err
	}
	if !deleted {
		return c.Status(404).JSON(fiber.Map{"error": "Job not found"})
	}
	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}

// Admin forms post a bare date, API clients a full timestamp.
func parseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
