package catalog

import (
	"context"
	"fmt"

	"github.com/clanfrenzy/frenzybot/internal/domain"
	"github.com/clanfrenzy/frenzybot/internal/logger"
	"github.com/clanfrenzy/frenzybot/internal/repository"
)

// Service exposes read access to team catalogs plus the name-index lookups
// that back command autocompletion.
type Service interface {
	GetCatalog(ctx context.Context, team string) (*domain.Catalog, error)
	Tiers(ctx context.Context, team string) ([]string, error)
	Sources(ctx context.Context, team, tier string) ([]string, error)
	Items(ctx context.Context, team, tier, source string) ([]string, error)
	// Invalidate drops the cached name index for a team. The submission
	// service calls this on every catalog mutation.
	Invalidate(team string)
}

type service struct {
	repo  repository.Catalog
	cache *nameIndexCache
}

// NewService creates a new catalog service.
func NewService(repo repository.Catalog) Service {
	return &service{
		repo:  repo,
		cache: newNameIndexCache(NameIndexCacheSize, NameIndexCacheTTL),
	}
}

func (s *service) GetCatalog(ctx context.Context, team string) (*domain.Catalog, error) {
	c, err := s.repo.GetCatalog(ctx, team)
	if err != nil {
		return nil, err
	}
	if err := Validate(c); err != nil {
		// Malformed persisted data fails fast at the boundary instead of
		// silently zero-scoring deep inside the engine.
		logger.FromContext(ctx).Error(LogMsgCatalogValidationFailed, "team", team, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}
	return c, nil
}

func (s *service) Tiers(ctx context.Context, team string) ([]string, error) {
	idx, err := s.index(ctx, team)
	if err != nil {
		return nil, err
	}
	return idx.Tiers, nil
}

func (s *service) Sources(ctx context.Context, team, tier string) ([]string, error) {
	idx, err := s.index(ctx, team)
	if err != nil {
		return nil, err
	}
	sources, ok := idx.Sources[tier]
	if !ok {
		return nil, domain.ErrTierNotFound
	}
	return sources, nil
}

func (s *service) Items(ctx context.Context, team, tier, source string) ([]string, error) {
	idx, err := s.index(ctx, team)
	if err != nil {
		return nil, err
	}
	if _, ok := idx.Sources[tier]; !ok {
		return nil, domain.ErrTierNotFound
	}
	items, ok := idx.Items[tier+"."+source]
	if !ok {
		return nil, domain.ErrSourceNotFound
	}
	return items, nil
}

func (s *service) Invalidate(team string) {
	s.cache.Invalidate(team)
}

// index returns the team's cached name index, reading through to the
// repository on miss.
func (s *service) index(ctx context.Context, team string) (*nameIndex, error) {
	if idx, ok := s.cache.Get(team); ok {
		return idx, nil
	}
	c, err := s.GetCatalog(ctx, team)
	if err != nil {
		return nil, err
	}
	idx := buildNameIndex(c)
	s.cache.Set(team, idx)
	return idx, nil
}
