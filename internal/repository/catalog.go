package repository

import (
	"context"

	"github.com/clanfrenzy/frenzybot/internal/domain"
)

// Catalog defines the interface for team catalog persistence. The engine
// treats loads and saves as atomic, durable operations; retry policy belongs
// to the storage implementation, not the callers.
type Catalog interface {
	GetCatalog(ctx context.Context, team string) (*domain.Catalog, error)
	SaveCatalog(ctx context.Context, team string, c *domain.Catalog) error
	ListTeams(ctx context.Context) ([]string, error)
}
