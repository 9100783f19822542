package main

import (
	"fmt"
	"os"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/config"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/database"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Prints a terminal snapshot of the hiring pipeline: how many candidates sit
// in each stage, and the upcoming interview bookings.
func main() {
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		color.Red("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	counts, err := database.CountCandidatesByStage(db)
	if err != nil {
		color.Red("Error loading stage counts: %v", err)
		os.Exit(1)
	}

	color.Cyan("\n=== Hiring Pipeline Report ===")

	color.Yellow("\nCandidates by Stage")
	stageTable := tablewriter.NewWriter(os.Stdout)
	stageTable.SetHeader([]string{"Stage", "Candidates"})
	for _, stage := range []models.Stage{
		models.StageApplied, models.StageTested, models.StageScored,
		models.StageEligible, models.StageRejected, models.StageScheduled,
		models.StageConfirmed,
	} {
		stageTable.Append([]string{string(stage), fmt.Sprintf("%d", counts[stage])})
	}
	stageTable.Render()

	interviews, err := database.AllInterviews(db)
	if err != nil {
		color.Red("Error loading interviews: %v", err)
		os.Exit(1)
	}

	color.Yellow("\nScheduled Interviews")
	if len(interviews) == 0 {
		fmt.Println("none")
		return
	}
	ivTable := tablewriter.NewWriter(os.Stdout)
	ivTable.SetHeader([]string{"Candidate", "Email", "Position", "Slot"})
	for _, iv := range interviews {
		ivTable.Append([]string{
			iv.CandidateName,
			iv.CandidateEmail,
			iv.Position,
			iv.SlotTime.Format("Mon Jan 2 15:04"),
		})
	}
	ivTable.Render()
}
