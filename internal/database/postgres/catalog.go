package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clanfrenzy/frenzybot/internal/domain"
)

// CatalogRepository implements the catalog repository for PostgreSQL. The
// catalog is persisted as one JSONB document per team: every save replaces
// the whole document, which matches the engine's catalog-as-a-unit update
// model and keeps the row transition atomic.
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetCatalog loads the catalog document for a team.
func (r *CatalogRepository) GetCatalog(ctx context.Context, team string) (*domain.Catalog, error) {
	var doc []byte
	err := r.db.QueryRow(ctx, `SELECT doc FROM catalogs WHERE team = $1`, team).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTeamNotFound, team)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCatalog, err)
	}

	var c domain.Catalog
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalCatalog, err)
	}
	c.Team = team
	return &c, nil
}

// SaveCatalog upserts the full catalog document for a team.
func (r *CatalogRepository) SaveCatalog(ctx context.Context, team string, c *domain.Catalog) error {
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalCatalog, err)
	}

	query := `
		INSERT INTO catalogs (team, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (team) DO UPDATE
		SET doc = EXCLUDED.doc, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, team, doc); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveCatalog, err)
	}
	return nil
}

// ListTeams returns all teams that have a catalog, sorted by name.
func (r *CatalogRepository) ListTeams(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT team FROM catalogs ORDER BY team`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTeams, err)
	}
	defer rows.Close()

	var teams []string
	for rows.Next() {
		var team string
		if err := rows.Scan(&team); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTeams, err)
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}
