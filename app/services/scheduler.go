package services

import (
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/assessment"
	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/pipeline"
	"go.uber.org/zap"
)

// StartScheduler starts the background task scheduler. Every minute it
// force-finalizes assessment sessions whose deadline has passed without an
// explicit submit, so no session stays open indefinitely.
func StartScheduler(eng *assessment.Engine, machine *pipeline.Machine, log *zap.Logger) {
	go func() {
		log.Info("scheduler started")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			SweepExpiredSessions(eng, machine, log, time.Now())
		}
	}()
}

// SweepExpiredSessions finalizes every expired, unfinished session and feeds
// the score into the pipeline gate. Errors are logged and never fatal.
func SweepExpiredSessions(eng *assessment.Engine, machine *pipeline.Machine, log *zap.Logger, now time.Time) {
	for _, id := range eng.ExpiredSessions(now) {
		session, err := eng.Get(id)
		if err != nil {
			continue
		}

		score, err := eng.Finalize(id)
		if err != nil {
			log.Error("force-finalize failed", zap.String("session_id", id), zap.Error(err))
			continue
		}

		if _, err := machine.CompleteAssessment(session.CandidateID, score); err != nil {
			log.Error("gating swept session failed",
				zap.String("session_id", id),
				zap.String("candidate_id", session.CandidateID),
				zap.Error(err),
			)
		}
		eng.Discard(id)

		log.Info("expired session auto-submitted",
			zap.String("session_id", id),
			zap.String("candidate_id", session.CandidateID),
			zap.Float64("score", score),
		)
	}
}
