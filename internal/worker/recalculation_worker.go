package worker

import (
	"context"

	"github.com/clanfrenzy/frenzybot/internal/logger"
	"github.com/clanfrenzy/frenzybot/internal/participant"
)

// Recalculator is the slice of the participant service the job needs.
type Recalculator interface {
	RecalculateAll(ctx context.Context) (*participant.RecalcSummary, error)
}

// RecalculationJob periodically re-derives participant totals from the
// current catalog state, picking up multiplier unlocks that happened after a
// participant's submissions were scored.
type RecalculationJob struct {
	participants Recalculator
}

// NewRecalculationJob creates a new RecalculationJob
func NewRecalculationJob(participants Recalculator) *RecalculationJob {
	return &RecalculationJob{participants: participants}
}

// Process runs one full recalculation pass.
func (j *RecalculationJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgRecalculationJobStarting)

	summary, err := j.participants.RecalculateAll(ctx)
	if err != nil {
		return err
	}

	log.Debug(LogMsgRecalculationJobDone,
		"teams", summary.TeamsProcessed,
		"checked", summary.ParticipantsChecked,
		"updated", summary.ParticipantsUpdated,
	)
	return nil
}
