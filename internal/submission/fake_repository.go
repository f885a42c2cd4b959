package submission

import (
	"context"
	"sync"

	"github.com/clanfrenzy/frenzybot/internal/domain"
)

// Fake repositories for service tests. They mirror the persistence contract
// closely enough to exercise rollback behavior: saves deep-copy, loads return
// fresh clones, and failures are injectable per call.

type fakeCatalogRepo struct {
	mu       sync.Mutex
	catalogs map[string]*domain.Catalog
	saves    int
	failSave func(saveCount int) error
}

func newFakeCatalogRepo(catalogs ...*domain.Catalog) *fakeCatalogRepo {
	r := &fakeCatalogRepo{catalogs: make(map[string]*domain.Catalog)}
	for _, c := range catalogs {
		r.catalogs[c.Team] = c.Clone()
	}
	return r
}

func (r *fakeCatalogRepo) GetCatalog(ctx context.Context, team string) (*domain.Catalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.catalogs[team]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	return c.Clone(), nil
}

func (r *fakeCatalogRepo) SaveCatalog(ctx context.Context, team string, c *domain.Catalog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.failSave != nil {
		if err := r.failSave(r.saves); err != nil {
			return err
		}
	}
	r.catalogs[team] = c.Clone()
	return nil
}

func (r *fakeCatalogRepo) ListTeams(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	teams := make([]string, 0, len(r.catalogs))
	for t := range r.catalogs {
		teams = append(teams, t)
	}
	return teams, nil
}

type fakeParticipantRepo struct {
	mu          sync.Mutex
	byID        map[string]*domain.Participant
	records     []domain.SubmissionRecord
	failUpdate  error
	failAppend  error
	updateCalls int
}

func newFakeParticipantRepo(participants ...*domain.Participant) *fakeParticipantRepo {
	r := &fakeParticipantRepo{byID: make(map[string]*domain.Participant)}
	for _, p := range participants {
		r.byID[p.ID] = clonePart(p)
	}
	return r
}

func clonePart(p *domain.Participant) *domain.Participant {
	cp := *p
	cp.ObtainedItems = make(map[string]int, len(p.ObtainedItems))
	for k, v := range p.ObtainedItems {
		cp.ObtainedItems[k] = v
	}
	return &cp
}

func (r *fakeParticipantRepo) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	return clonePart(p), nil
}

func (r *fakeParticipantRepo) GetByDiscordID(ctx context.Context, discordID string) (*domain.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.byID {
		if p.DiscordID == discordID {
			return clonePart(p), nil
		}
	}
	return nil, domain.ErrParticipantNotFound
}

func (r *fakeParticipantRepo) Create(ctx context.Context, p *domain.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = clonePart(p)
	return nil
}

func (r *fakeParticipantRepo) Update(ctx context.Context, p *domain.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	if r.failUpdate != nil {
		return r.failUpdate
	}
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrParticipantNotFound
	}
	r.byID[p.ID] = clonePart(p)
	return nil
}

func (r *fakeParticipantRepo) ListByTeam(ctx context.Context, team string) ([]*domain.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Participant
	for _, p := range r.byID {
		if p.Team == team {
			out = append(out, clonePart(p))
		}
	}
	return out, nil
}

func (r *fakeParticipantRepo) ListAll(ctx context.Context) ([]*domain.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Participant, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, clonePart(p))
	}
	return out, nil
}

func (r *fakeParticipantRepo) AppendSubmission(ctx context.Context, rec *domain.SubmissionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAppend != nil {
		return r.failAppend
	}
	r.records = append(r.records, *rec)
	return nil
}

func (r *fakeParticipantRepo) ListSubmissions(ctx context.Context, participantID string, limit int) ([]domain.SubmissionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.SubmissionRecord
	for i := len(r.records) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		if r.records[i].ParticipantID == participantID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}
