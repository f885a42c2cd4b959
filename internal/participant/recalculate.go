package participant

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/clanfrenzy/frenzybot/internal/event"
	"github.com/clanfrenzy/frenzybot/internal/logger"
	"github.com/clanfrenzy/frenzybot/internal/metrics"
	"github.com/clanfrenzy/frenzybot/internal/scoring"
)

// totalsEpsilon absorbs float drift between the incremental delta path and a
// full re-derivation, so unchanged participants are not rewritten every pass.
const totalsEpsilon = 1e-9

// RecalcSummary reports the outcome of one full recalculation pass.
type RecalcSummary struct {
	TeamsProcessed      int `json:"teams_processed"`
	ParticipantsChecked int `json:"participants_checked"`
	ParticipantsUpdated int `json:"participants_updated"`
	Errors              int `json:"errors"`
}

// RecalculateAll re-derives every participant's total from their obtained
// item counts against the current catalog state. Individual totals use the
// unlocked multipliers only; the completion bonus is a team-level award and
// never appears in a personal total. Accepted submissions landing while the
// pass runs are picked up by the next pass.
func (s *service) RecalculateAll(ctx context.Context) (*RecalcSummary, error) {
	log := logger.FromContext(ctx)
	start := time.Now()
	summary := &RecalcSummary{}

	teams, err := s.catalogRepo.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	log.Info(LogMsgRecalculationStarted, "teams", len(teams))

	for _, team := range teams {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if err := s.recalculateTeam(ctx, team, summary); err != nil {
			summary.Errors++
			metrics.RecalculationErrors.WithLabelValues(team).Inc()
			log.Warn(LogMsgRecalcTeamFailed, "team", team, "error", err)
			continue
		}
		summary.TeamsProcessed++
		metrics.RecalculationRuns.WithLabelValues(team).Inc()
	}

	metrics.RecalculationDuration.Observe(time.Since(start).Seconds())

	if err := s.bus.Publish(ctx, event.NewRecalculationCompletedEvent(summary.ParticipantsChecked, summary.ParticipantsUpdated, summary.Errors)); err != nil {
		log.Warn(LogMsgPublishFailed, "type", event.RecalculationCompleted, "error", err)
	}

	log.Info(LogMsgRecalculationDone,
		"teams", summary.TeamsProcessed,
		"checked", summary.ParticipantsChecked,
		"updated", summary.ParticipantsUpdated,
		"errors", summary.Errors,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return summary, nil
}

// recalculateTeam holds the team lock for the whole read-recompute-write
// cycle. An acceptance committing between the list read and the write-back
// would otherwise have its ledger entry overwritten by the stale row.
func (s *service) recalculateTeam(ctx context.Context, team string, summary *RecalcSummary) error {
	return s.locks.WithLock(team, func() error {
		cat, err := s.catalogSvc.GetCatalog(ctx, team)
		if err != nil {
			return fmt.Errorf(ErrFmtLoadCatalog, team, err)
		}

		participants, err := s.repo.ListByTeam(ctx, team)
		if err != nil {
			return fmt.Errorf(ErrFmtListParticipants, team, err)
		}

		log := logger.FromContext(ctx)
		for _, p := range participants {
			summary.ParticipantsChecked++

			total := scoring.ParticipantPoints(p, cat)
			if math.Abs(total-p.TotalPoints) <= totalsEpsilon {
				continue
			}

			p.TotalPoints = total
			p.UpdatedAt = time.Now().UTC()
			if err := s.repo.Update(ctx, p); err != nil {
				summary.Errors++
				log.Warn(LogMsgRecalcUpdateFailed, "participant_id", p.ID, "error", err)
				continue
			}
			summary.ParticipantsUpdated++
		}
		return nil
	})
}
