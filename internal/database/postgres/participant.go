package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clanfrenzy/frenzybot/internal/domain"
)

// ParticipantRepository implements the participant repository for PostgreSQL.
// Core fields are relational for leaderboard queries; the per-item obtained
// counts ride along as a JSONB column keyed by tier.source.item.
type ParticipantRepository struct {
	db *pgxpool.Pool
}

// NewParticipantRepository creates a new ParticipantRepository
func NewParticipantRepository(db *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

const participantColumns = `participant_id, discord_id, username, team, total_points, obtained_items, created_at, updated_at`

func scanParticipant(row pgx.Row) (*domain.Participant, error) {
	var p domain.Participant
	var obtained []byte
	err := row.Scan(&p.ID, &p.DiscordID, &p.Username, &p.Team, &p.TotalPoints, &obtained, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(obtained, &p.ObtainedItems); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalObtained, err)
	}
	if p.ObtainedItems == nil {
		p.ObtainedItems = make(map[string]int)
	}
	return &p, nil
}

// GetByID looks a participant up by internal ID.
func (r *ParticipantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	row := r.db.QueryRow(ctx, `SELECT `+participantColumns+` FROM participants WHERE participant_id = $1`, id)
	p, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetParticipant, err)
	}
	return p, nil
}

// GetByDiscordID looks a participant up by their Discord user ID.
func (r *ParticipantRepository) GetByDiscordID(ctx context.Context, discordID string) (*domain.Participant, error) {
	row := r.db.QueryRow(ctx, `SELECT `+participantColumns+` FROM participants WHERE discord_id = $1`, discordID)
	p, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetParticipant, err)
	}
	return p, nil
}

// Create inserts a new participant row.
func (r *ParticipantRepository) Create(ctx context.Context, p *domain.Participant) error {
	obtained := []byte(EmptyObtainedItemsJSON)
	if p.ObtainedItems != nil {
		var err error
		obtained, err = json.Marshal(p.ObtainedItems)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalObtained, err)
		}
	}

	query := `
		INSERT INTO participants (participant_id, discord_id, username, team, total_points, obtained_items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, p.ID, p.DiscordID, p.Username, p.Team, p.TotalPoints, obtained, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%s: %w", ErrMsgParticipantAlreadyExists, err)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertParticipant, err)
	}
	return nil
}

// Update rewrites a participant's mutable fields.
func (r *ParticipantRepository) Update(ctx context.Context, p *domain.Participant) error {
	obtained, err := json.Marshal(p.ObtainedItems)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalObtained, err)
	}

	query := `
		UPDATE participants
		SET username = $1, team = $2, total_points = $3, obtained_items = $4, updated_at = NOW()
		WHERE participant_id = $5
	`
	tag, err := r.db.Exec(ctx, query, p.Username, p.Team, p.TotalPoints, obtained, p.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateParticipant, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

// ListByTeam returns all participants in a team.
func (r *ParticipantRepository) ListByTeam(ctx context.Context, team string) ([]*domain.Participant, error) {
	rows, err := r.db.Query(ctx, `SELECT `+participantColumns+` FROM participants WHERE team = $1 ORDER BY total_points DESC, username`, team)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListParticipants, err)
	}
	defer rows.Close()
	return collectParticipants(rows)
}

// ListAll returns every participant across all teams.
func (r *ParticipantRepository) ListAll(ctx context.Context) ([]*domain.Participant, error) {
	rows, err := r.db.Query(ctx, `SELECT `+participantColumns+` FROM participants ORDER BY team, total_points DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListParticipants, err)
	}
	defer rows.Close()
	return collectParticipants(rows)
}

func collectParticipants(rows pgx.Rows) ([]*domain.Participant, error) {
	var out []*domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListParticipants, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// AppendSubmission inserts one audit record.
func (r *ParticipantRepository) AppendSubmission(ctx context.Context, rec *domain.SubmissionRecord) error {
	query := `
		INSERT INTO submissions (submission_id, participant_id, team, tier, source, item, status, points_awarded, reviewer_id, screenshot_url, decided_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		rec.ID, rec.ParticipantID, rec.Team, rec.Tier, rec.Source, rec.Item,
		string(rec.Status), rec.PointsAwarded, rec.ReviewerID, rec.ScreenshotURL, rec.DecidedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertSubmission, err)
	}
	return nil
}

// ListSubmissions returns a participant's most recent audit records.
func (r *ParticipantRepository) ListSubmissions(ctx context.Context, participantID string, limit int) ([]domain.SubmissionRecord, error) {
	query := `
		SELECT submission_id, participant_id, team, tier, source, item, status, points_awarded, reviewer_id, screenshot_url, decided_at
		FROM submissions
		WHERE participant_id = $1
		ORDER BY decided_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, participantID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSubmissions, err)
	}
	defer rows.Close()

	var out []domain.SubmissionRecord
	for rows.Next() {
		var rec domain.SubmissionRecord
		var status string
		err := rows.Scan(&rec.ID, &rec.ParticipantID, &rec.Team, &rec.Tier, &rec.Source, &rec.Item,
			&status, &rec.PointsAwarded, &rec.ReviewerID, &rec.ScreenshotURL, &rec.DecidedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSubmissions, err)
		}
		rec.Status = domain.SubmissionStatus(status)
		out = append(out, rec)
	}
	return out, rows.Err()
}
