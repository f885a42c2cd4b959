package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clanfrenzy/frenzybot/internal/catalog"
	"github.com/clanfrenzy/frenzybot/internal/concurrency"
	"github.com/clanfrenzy/frenzybot/internal/domain"
	"github.com/clanfrenzy/frenzybot/internal/event"
	"github.com/clanfrenzy/frenzybot/internal/logger"
	"github.com/clanfrenzy/frenzybot/internal/metrics"
	"github.com/clanfrenzy/frenzybot/internal/repository"
	"github.com/clanfrenzy/frenzybot/internal/scoring"
)

// AcceptRequest identifies the submission a reviewer is accepting.
type AcceptRequest struct {
	Team          string
	Tier          string
	Source        string
	Item          string
	ParticipantID string
	ReviewerID    string
	ScreenshotURL string
}

// DenyRequest identifies the submission a reviewer is denying.
type DenyRequest struct {
	Team          string
	Tier          string
	Source        string
	Item          string
	ParticipantID string
	ReviewerID    string
}

// AcceptResult is what the review surface displays back to the channel.
type AcceptResult struct {
	SubmissionID     string   `json:"submission_id"`
	PointsAwarded    float64  `json:"points_awarded"`
	ParticipantTotal float64  `json:"participant_total"`
	NewObtained      int      `json:"new_obtained"`
	NewlyUnlocked    []string `json:"newly_unlocked,omitempty"`
}

// Service defines the interface for submission review operations.
type Service interface {
	Accept(ctx context.Context, req AcceptRequest) (*AcceptResult, error)
	Deny(ctx context.Context, req DenyRequest) error
}

type service struct {
	catalogRepo     repository.Catalog
	participantRepo repository.Participant
	catalogSvc      catalog.Service
	bus             event.Bus
	locks           *concurrency.LockManager
}

// NewService creates a new submission service. The lock manager must be
// shared with the participant service so acceptances and the recalculation
// pass serialize on the same per-team locks.
func NewService(catalogRepo repository.Catalog, participantRepo repository.Participant, catalogSvc catalog.Service, bus event.Bus, locks *concurrency.LockManager) Service {
	return &service{
		catalogRepo:     catalogRepo,
		participantRepo: participantRepo,
		catalogSvc:      catalogSvc,
		bus:             bus,
		locks:           locks,
	}
}

// Accept processes one accepted submission as a single unit per team: the
// catalog read-modify-write and the before/after total diff must not
// interleave with another acceptance for the same team, or the marginal
// delta is wrong. Different teams proceed in parallel.
func (s *service) Accept(ctx context.Context, req AcceptRequest) (*AcceptResult, error) {
	var result *AcceptResult
	err := s.locks.WithLock(req.Team, func() error {
		var err error
		result, err = s.accept(ctx, req)
		return err
	})
	return result, err
}

func (s *service) accept(ctx context.Context, req AcceptRequest) (*AcceptResult, error) {
	log := logger.FromContext(ctx)

	cat, err := s.catalogSvc.GetCatalog(ctx, req.Team)
	if err != nil {
		return nil, err
	}

	participant, err := s.participantRepo.GetByID(ctx, req.ParticipantID)
	if err != nil {
		return nil, err
	}

	ref, err := cat.FindItem(req.Tier, req.Source, req.Item)
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s/%s", err, req.Tier, req.Source, req.Item)
	}

	// Past the maximum scorable threshold no further points exist for this
	// item; the submission is refused outright rather than scored as zero.
	// This is an automatic policy rejection, distinct from a reviewer deny.
	if ref.Item.Obtained >= ref.Item.MaxObtainable() {
		s.recordDecision(ctx, req.Team, req.Tier, req.Source, req.Item, req.ParticipantID, req.ReviewerID, req.ScreenshotURL, domain.SubmissionRejected, 0)
		metrics.SubmissionsRejected.Inc()
		log.Info(LogMsgSubmissionRejected, "team", req.Team, "item", req.Item, "obtained", ref.Item.Obtained)
		return nil, fmt.Errorf("%w: %s", domain.ErrItemMaxed, req.Item)
	}

	// Before snapshot; all delta math happens on copies or on the live
	// catalog under the team lock, never on persisted state.
	before := cat.Clone()
	totalBefore := scoring.RecomputeTotals(before)

	newObtained, err := cat.IncrementObtained(req.Tier, req.Source, req.Item)
	if err != nil {
		return nil, err
	}

	newlyUnlocked := scoring.CheckUnlocks(cat, before)
	totalAfter := scoring.RecomputeTotals(cat)

	// A single acceptance can cross the item's own threshold, unlock a
	// multiplier re-scoring other items, and trigger the completion bonus
	// at once. Only the whole-team diff captures the true marginal value.
	delta := totalAfter - totalBefore

	record := &domain.SubmissionRecord{
		ID:            uuid.NewString(),
		ParticipantID: participant.ID,
		Team:          req.Team,
		Tier:          req.Tier,
		Source:        req.Source,
		Item:          req.Item,
		Status:        domain.SubmissionAccepted,
		PointsAwarded: delta,
		ReviewerID:    req.ReviewerID,
		ScreenshotURL: req.ScreenshotURL,
		DecidedAt:     time.Now().UTC(),
	}

	if participant.ObtainedItems == nil {
		participant.ObtainedItems = make(map[string]int)
	}
	participant.ObtainedItems[ref.Key()]++
	participant.TotalPoints += delta

	if err := s.catalogRepo.SaveCatalog(ctx, req.Team, cat); err != nil {
		return nil, fmt.Errorf(ErrFmtSaveCatalogFailed, err)
	}
	if err := s.saveParticipant(ctx, participant, record); err != nil {
		// The submission is not accepted unless both saves succeed. Restore
		// the catalog to the pre-increment snapshot so no partial mutation
		// stays visible to other readers.
		if rbErr := s.catalogRepo.SaveCatalog(ctx, req.Team, before); rbErr != nil {
			log.Error(LogMsgRollbackFailed, "team", req.Team, "error", rbErr)
		}
		return nil, fmt.Errorf(ErrFmtSaveParticipantFailed, err)
	}

	s.catalogSvc.Invalidate(req.Team)

	metrics.SubmissionsAccepted.Inc()
	metrics.PointsAwarded.Add(delta)
	if len(newlyUnlocked) > 0 {
		metrics.MultipliersUnlocked.Add(float64(len(newlyUnlocked)))
		if err := s.bus.Publish(ctx, event.NewMultiplierUnlockedEvent(req.Team, newlyUnlocked)); err != nil {
			log.Warn(LogMsgPublishFailed, "type", event.MultiplierUnlocked, "error", err)
		}
	}
	if err := s.bus.Publish(ctx, event.NewSubmissionDecidedEvent(event.SubmissionAccepted, record.ID, req.Team, req.Tier, req.Source, req.Item, participant.ID, req.ReviewerID, delta)); err != nil {
		log.Warn(LogMsgPublishFailed, "type", event.SubmissionAccepted, "error", err)
	}

	log.Info(LogMsgSubmissionAccepted,
		"team", req.Team,
		"item", req.Item,
		"participant", participant.ID,
		"points", delta,
		"new_obtained", newObtained,
		"newly_unlocked", newlyUnlocked,
	)

	return &AcceptResult{
		SubmissionID:     record.ID,
		PointsAwarded:    delta,
		ParticipantTotal: participant.TotalPoints,
		NewObtained:      newObtained,
		NewlyUnlocked:    newlyUnlocked,
	}, nil
}

// Deny records a reviewer-initiated denial. No catalog state changes.
func (s *service) Deny(ctx context.Context, req DenyRequest) error {
	cat, err := s.catalogSvc.GetCatalog(ctx, req.Team)
	if err != nil {
		return err
	}
	if _, err := cat.FindItem(req.Tier, req.Source, req.Item); err != nil {
		return fmt.Errorf("%w: %s/%s/%s", err, req.Tier, req.Source, req.Item)
	}
	if _, err := s.participantRepo.GetByID(ctx, req.ParticipantID); err != nil {
		return err
	}

	recordID := s.recordDecision(ctx, req.Team, req.Tier, req.Source, req.Item, req.ParticipantID, req.ReviewerID, "", domain.SubmissionDenied, 0)
	metrics.SubmissionsDenied.Inc()

	if err := s.bus.Publish(ctx, event.NewSubmissionDecidedEvent(event.SubmissionDenied, recordID, req.Team, req.Tier, req.Source, req.Item, req.ParticipantID, req.ReviewerID, 0)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", event.SubmissionDenied, "error", err)
	}
	return nil
}

func (s *service) saveParticipant(ctx context.Context, p *domain.Participant, rec *domain.SubmissionRecord) error {
	if err := s.participantRepo.Update(ctx, p); err != nil {
		return err
	}
	return s.participantRepo.AppendSubmission(ctx, rec)
}

// recordDecision appends an audit entry for a non-scoring decision. Audit
// failures are logged, not surfaced; the decision itself already stands.
func (s *service) recordDecision(ctx context.Context, team, tier, source, item, participantID, reviewerID, screenshotURL string, status domain.SubmissionStatus, points float64) string {
	rec := &domain.SubmissionRecord{
		ID:            uuid.NewString(),
		ParticipantID: participantID,
		Team:          team,
		Tier:          tier,
		Source:        source,
		Item:          item,
		Status:        status,
		PointsAwarded: points,
		ReviewerID:    reviewerID,
		ScreenshotURL: screenshotURL,
		DecidedAt:     time.Now().UTC(),
	}
	if err := s.participantRepo.AppendSubmission(ctx, rec); err != nil && !errors.Is(err, context.Canceled) {
		logger.FromContext(ctx).Warn(LogMsgAuditAppendFailed, "status", status, "error", err)
	}
	return rec.ID
}
