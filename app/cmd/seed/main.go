package main

import (
	"fmt"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/config"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/database"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/routes/auth"
)

// Seeds the demo question set for the Software Engineer field, an admin
// account and an open posting, so a fresh install can run the full pipeline
// end to end.
func main() {
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		return
	}

	questions := []models.Question{
		{
			Field:         "Software Engineer",
			Prompt:        "What is the capital of France?",
			Options:       []string{"London", "Berlin", "Paris", "Madrid"},
			CorrectAnswer: "Paris",
		},
		{
			Field:         "Software Engineer",
			Prompt:        "Which programming language is React built with?",
			Options:       []string{"Java", "Python", "JavaScript", "C++"},
			CorrectAnswer: "JavaScript",
		},
		{
			Field:         "Software Engineer",
			Prompt:        "What does HTML stand for?",
			Options:       []string{"Hyper Text Markup Language", "High Tech Modern Language", "Hyper Transfer Markup Language", "Home Tool Markup Language"},
			CorrectAnswer: "Hyper Text Markup Language",
		},
		{
			Field:         "Software Engineer",
			Prompt:        "What is the primary purpose of a firewall in network security?",
			Options:       []string{"Virus scanning", "Traffic filtering", "Data encryption", "User authentication"},
			CorrectAnswer: "Traffic filtering",
		},
		{
			Field:         "Software Engineer",
			Prompt:        "Which of the following is not a valid HTTP status code?",
			Options:       []string{"200 OK", "404 Not Found", "500 Internal Server Error", "600 Server Busy"},
			CorrectAnswer: "600 Server Busy",
		},
	}

	for _, q := range questions {
		q := q
		if err := database.InsertQuestion(db, &q); err != nil {
			fmt.Printf("Error inserting question: %v\n", err)
			return
		}
	}
	fmt.Printf("Seeded %d questions\n", len(questions))

	job := &models.Job{
		Title:               "Software Engineer",
		Company:             "ZMedia Technologies",
		Location:            "Lahore",
		Salary:              "Market competitive",
		Type:                "Full-time",
		Description:         "Build and maintain the company's web products.",
		Requirements:        "Solid grasp of JavaScript and SQL.",
		Responsibilities:    "Feature development, code review, production support.",
		Experience:          "2+ years",
		Education:           "BS Computer Science or equivalent",
		ApplicationDeadline: time.Now().AddDate(0, 1, 0),
		ContactEmail:        "owner@zmediatechnologies.com",
		RemoteWork:          true,
	}
	if err := database.InsertJob(db, job); err != nil {
		fmt.Printf("Error inserting job: %v\n", err)
		return
	}
	fmt.Printf("Seeded job posting: %s\n", job.Title)

	hashed, err := auth.HashPassword("ChangeMe123!")
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		return
	}
	user := &models.User{
		Name:     "Admin",
		Email:    "admin@zmediatechnologies.com",
		Password: hashed,
	}
	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating admin user: %v\n", err)
		return
	}

	fmt.Printf("Admin user created: %s (change the default password)\n", user.Email)
}
