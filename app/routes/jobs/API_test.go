package jobs

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func postJob(t *testing.T, app *fiber.App, body, token string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/jobs/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp.StatusCode
}

func TestCreateJobRequiresToken(t *testing.T) {
	app := fiber.New()
	SetupJobsRoutes(app, nil)

	if code := postJob(t, app, `{"title":"Backend Engineer"}`, ""); code != 401 {
		t.Fatalf("status = %d, want 401 without a token", code)
	}
}

func TestCreateJobValidation(t *testing.T) {
	app := fiber.New()
	SetupJobsRoutes(app, nil)

	token, err := auth.GenerateJWT("user-1", "admin@example.com", "Admin")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	// title present, everything else missing
	if code := postJob(t, app, `{"title":"Backend Engineer"}`, token); code != 400 {
		t.Fatalf("status = %d, want 400 for missing fields", code)
	}

	full := `{"title":"Backend Engineer","company":"ZMedia","location":"Lahore",
		"salary":"150k","type":"Full-time","description":"d","requirements":"r",
		"responsibilities":"r","experience":"3 years","education":"BS",
		"application_deadline":"someday","contact_email":"hr@example.com"}`
	if code := postJob(t, app, full, token); code != 400 {
		t.Fatalf("status = %d, want 400 for unparseable deadline", code)
	}
}

func TestParseDeadlineFormats(t *testing.T) {
	got, err := parseDeadline("2026-09-30")
	if err != nil {
		t.Fatalf("bare date rejected: %v", err)
	}
	if !got.Equal(time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("bare date parsed as %v", got)
	}

	if _, err := parseDeadline("2026-09-30T17:00:00Z"); err != nil {
		t.Fatalf("RFC3339 rejected: %v", err)
	}

	if _, err := parseDeadline("next month"); err == nil {
		t.Fatal("garbage deadline accepted")
	}
}
