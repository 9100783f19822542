package models

// Stage defines a candidate's position in the hiring pipeline.
type Stage string

const (
	StageApplied   Stage = "applied"
	StageTested    Stage = "tested"
	StageScored    Stage = "scored"
	StageEligible  Stage = "eligible"
	StageRejected  Stage = "rejected"
	StageScheduled Stage = "scheduled"
	StageConfirmed Stage = "confirmed"
)

// Terminal reports whether no further transition can leave the stage.
func (s Stage) Terminal() bool {
	return s == StageRejected || s == StageConfirmed
}
