package repository

import (
	"context"

	"github.com/clanfrenzy/frenzybot/internal/domain"
)

// Participant defines the interface for participant persistence.
type Participant interface {
	GetByID(ctx context.Context, id string) (*domain.Participant, error)
	GetByDiscordID(ctx context.Context, discordID string) (*domain.Participant, error)
	Create(ctx context.Context, p *domain.Participant) error
	Update(ctx context.Context, p *domain.Participant) error
	ListByTeam(ctx context.Context, team string) ([]*domain.Participant, error)
	ListAll(ctx context.Context) ([]*domain.Participant, error)

	AppendSubmission(ctx context.Context, rec *domain.SubmissionRecord) error
	ListSubmissions(ctx context.Context, participantID string, limit int) ([]domain.SubmissionRecord, error)
}
