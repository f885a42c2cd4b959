package participant

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/clanfrenzy/frenzybot/internal/catalog"
	"github.com/clanfrenzy/frenzybot/internal/concurrency"
	"github.com/clanfrenzy/frenzybot/internal/domain"
	"github.com/clanfrenzy/frenzybot/internal/event"
	"github.com/clanfrenzy/frenzybot/internal/logger"
	"github.com/clanfrenzy/frenzybot/internal/repository"
)

// Profile bundles a participant with their recent submission history.
type Profile struct {
	Participant *domain.Participant       `json:"participant"`
	Recent      []domain.SubmissionRecord `json:"recent_submissions"`
}

// Service defines the interface for participant operations.
type Service interface {
	GetOrCreate(ctx context.Context, discordID, username, team string) (*domain.Participant, error)
	GetProfile(ctx context.Context, participantID string, historyLimit int) (*Profile, error)
	Leaderboard(ctx context.Context, team string, limit int) ([]domain.LeaderboardEntry, error)
	RecalculateAll(ctx context.Context) (*RecalcSummary, error)
}

type service struct {
	repo        repository.Participant
	catalogRepo repository.Catalog
	catalogSvc  catalog.Service
	bus         event.Bus
	locks       *concurrency.LockManager
}

// NewService creates a new participant service. The lock manager must be the
// same instance the submission service uses: the recalculation pass takes the
// team lock so it cannot interleave with an in-flight acceptance.
func NewService(repo repository.Participant, catalogRepo repository.Catalog, catalogSvc catalog.Service, bus event.Bus, locks *concurrency.LockManager) Service {
	return &service{
		repo:        repo,
		catalogRepo: catalogRepo,
		catalogSvc:  catalogSvc,
		bus:         bus,
		locks:       locks,
	}
}

// GetOrCreate resolves a participant by Discord ID, creating the record on
// first contact. Creation is serialized per Discord ID so concurrent first
// submissions cannot create duplicates.
func (s *service) GetOrCreate(ctx context.Context, discordID, username, team string) (*domain.Participant, error) {
	var out *domain.Participant
	// The manager is shared with the team-level locks; prefix the key so a
	// Discord ID can never alias a team name.
	err := s.locks.WithLock("discord:"+discordID, func() error {
		p, err := s.repo.GetByDiscordID(ctx, discordID)
		if err == nil {
			out = p
			return nil
		}
		if !errors.Is(err, domain.ErrParticipantNotFound) {
			return err
		}

		now := time.Now().UTC()
		p = &domain.Participant{
			ID:            uuid.NewString(),
			DiscordID:     discordID,
			Username:      username,
			Team:          team,
			ObtainedItems: make(map[string]int),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.repo.Create(ctx, p); err != nil {
			return fmt.Errorf(ErrFmtCreate, err)
		}
		logger.FromContext(ctx).Info(LogMsgParticipantCreated,
			"participant_id", p.ID,
			"discord_id", discordID,
			"team", team,
		)
		out = p
		return nil
	})
	return out, err
}

// GetProfile returns a participant with their most recent submissions.
func (s *service) GetProfile(ctx context.Context, participantID string, historyLimit int) (*Profile, error) {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}

	p, err := s.repo.GetByID(ctx, participantID)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.ListSubmissions(ctx, participantID, historyLimit)
	if err != nil {
		return nil, err
	}

	return &Profile{Participant: p, Recent: recent}, nil
}

// Leaderboard ranks a team's participants by total points, username breaking
// ties so the ordering is stable between refreshes.
func (s *service) Leaderboard(ctx context.Context, team string, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	participants, err := s.repo.ListByTeam(ctx, team)
	if err != nil {
		return nil, err
	}

	sort.Slice(participants, func(i, j int) bool {
		if participants[i].TotalPoints != participants[j].TotalPoints {
			return participants[i].TotalPoints > participants[j].TotalPoints
		}
		return participants[i].Username < participants[j].Username
	})

	if len(participants) > limit {
		participants = participants[:limit]
	}

	entries := make([]domain.LeaderboardEntry, len(participants))
	for i, p := range participants {
		entries[i] = domain.LeaderboardEntry{
			Rank:        i + 1,
			Username:    p.Username,
			DiscordID:   p.DiscordID,
			TotalPoints: p.TotalPoints,
		}
	}
	return entries, nil
}
