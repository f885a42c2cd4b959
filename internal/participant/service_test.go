package participant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanfrenzy/frenzybot/internal/catalog"
	"github.com/clanfrenzy/frenzybot/internal/concurrency"
	"github.com/clanfrenzy/frenzybot/internal/domain"
	"github.com/clanfrenzy/frenzybot/internal/event"
)

const testTeam = "ironworks"

// testCatalog has a completed source with an unlocked 2.0 multiplier, so the
// team-level effective factor is 2.5 with the completion bonus while the
// individual factor stays 2.0.
func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Team: testTeam,
		Tiers: map[string]*domain.Tier{
			"Bosses": {Sources: []*domain.Source{{
				Name: "Nex",
				Items: []*domain.Item{
					{Name: "Hilt", BasePoints: 10, DuplicatePoints: 5, UniqueRequired: 1, DuplicateRequired: 1, Obtained: 3},
					{Name: "Keystone", BasePoints: 10, DuplicatePoints: 5, UniqueRequired: 1, DuplicateRequired: 1, Obtained: 1},
				},
			}}},
		},
		Multipliers: []*domain.Multiplier{
			{Name: "Surge", Factor: 2.0, Affects: []string{"Nex"}, Requirement: []string{"Keystone"}, Unlocked: true},
		},
	}
}

func newTestService(catRepo *fakeCatalogRepo, repo *fakeParticipantRepo) (Service, event.Bus) {
	bus := event.NewMemoryBus()
	return NewService(repo, catRepo, catalog.NewService(catRepo), bus, concurrency.NewLockManager()), bus
}

func TestGetOrCreate(t *testing.T) {
	repo := newFakeParticipantRepo()
	svc, _ := newTestService(newFakeCatalogRepo(testCatalog()), repo)

	p1, err := svc.GetOrCreate(context.Background(), "discord-1", "saltis", testTeam)
	require.NoError(t, err)
	assert.NotEmpty(t, p1.ID)
	assert.Equal(t, "discord-1", p1.DiscordID)
	assert.Equal(t, testTeam, p1.Team)
	assert.NotNil(t, p1.ObtainedItems)
	assert.False(t, p1.CreatedAt.IsZero())

	// Second resolve returns the existing record.
	p2, err := svc.GetOrCreate(context.Background(), "discord-1", "saltis", testTeam)
	require.NoError(t, err)
	assert.Equal(t, p1.ID, p2.ID)
	assert.Equal(t, 1, repo.creates)
}

func TestGetProfile(t *testing.T) {
	repo := newFakeParticipantRepo(&domain.Participant{ID: "p1", Team: testTeam, Username: "saltis", TotalPoints: 42})
	svc, _ := newTestService(newFakeCatalogRepo(testCatalog()), repo)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AppendSubmission(context.Background(), &domain.SubmissionRecord{
			ID: "s" + string(rune('a'+i)), ParticipantID: "p1", Status: domain.SubmissionAccepted,
			DecidedAt: time.Now().UTC(),
		}))
	}

	profile, err := svc.GetProfile(context.Background(), "p1", 2)
	require.NoError(t, err)
	assert.Equal(t, 42.0, profile.Participant.TotalPoints)
	assert.Len(t, profile.Recent, 2)
	// Newest first.
	assert.Equal(t, "sc", profile.Recent[0].ID)

	_, err = svc.GetProfile(context.Background(), "ghost", 0)
	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
}

func TestLeaderboard(t *testing.T) {
	repo := newFakeParticipantRepo(
		&domain.Participant{ID: "p1", Team: testTeam, Username: "zed", TotalPoints: 50},
		&domain.Participant{ID: "p2", Team: testTeam, Username: "abel", TotalPoints: 50},
		&domain.Participant{ID: "p3", Team: testTeam, Username: "mika", TotalPoints: 120},
		&domain.Participant{ID: "p4", Team: "otherclan", Username: "rival", TotalPoints: 999},
	)
	svc, _ := newTestService(newFakeCatalogRepo(testCatalog()), repo)

	entries, err := svc.Leaderboard(context.Background(), testTeam, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, []string{"mika", "abel", "zed"}, []string{entries[0].Username, entries[1].Username, entries[2].Username})
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 3, entries[2].Rank)

	limited, err := svc.Leaderboard(context.Background(), testTeam, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "mika", limited[0].Username)
}

func TestRecalculateAll(t *testing.T) {
	repo := newFakeParticipantRepo(
		// Hilt at count 2: (10 base + 5 duplicate) x 2.0 unlocked = 30. No
		// completion bonus at the individual level even though the source is
		// complete team-wide.
		&domain.Participant{ID: "p1", Team: testTeam, Username: "saltis", TotalPoints: 0,
			ObtainedItems: map[string]int{"Bosses.Nex.Hilt": 2}},
		// Stale inflated total gets corrected downward.
		&domain.Participant{ID: "p2", Team: testTeam, Username: "mika", TotalPoints: 999,
			ObtainedItems: map[string]int{"Bosses.Nex.Keystone": 1}},
		// Already correct, not rewritten.
		&domain.Participant{ID: "p3", Team: testTeam, Username: "abel", TotalPoints: 30,
			ObtainedItems: map[string]int{"Bosses.Nex.Hilt": 2}},
	)
	svc, bus := newTestService(newFakeCatalogRepo(testCatalog()), repo)

	var payloads []event.RecalculationCompletedPayloadV1
	bus.Subscribe(event.RecalculationCompleted, func(ctx context.Context, e event.Event) error {
		payloads = append(payloads, e.Payload.(event.RecalculationCompletedPayloadV1))
		return nil
	})

	summary, err := svc.RecalculateAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TeamsProcessed)
	assert.Equal(t, 3, summary.ParticipantsChecked)
	assert.Equal(t, 2, summary.ParticipantsUpdated)
	assert.Equal(t, 0, summary.Errors)

	p1, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.InDelta(t, 30.0, p1.TotalPoints, 1e-9)

	p2, err := repo.GetByID(context.Background(), "p2")
	require.NoError(t, err)
	assert.InDelta(t, 20.0, p2.TotalPoints, 1e-9)

	require.Len(t, payloads, 1)
	assert.Equal(t, 3, payloads[0].ParticipantsChecked)
	assert.Equal(t, 2, payloads[0].ParticipantsUpdated)
}

func TestRecalculateAll_SkipsBadKeys(t *testing.T) {
	repo := newFakeParticipantRepo(
		&domain.Participant{ID: "p1", Team: testTeam, Username: "saltis", TotalPoints: 77,
			ObtainedItems: map[string]int{"garbage": 5, "Bosses.Nex.Ghost": 1}},
	)
	svc, _ := newTestService(newFakeCatalogRepo(testCatalog()), repo)

	summary, err := svc.RecalculateAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ParticipantsUpdated)

	p1, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, p1.TotalPoints)
}

func TestRecalculateAll_SerializesWithAcceptance(t *testing.T) {
	repo := newFakeParticipantRepo(
		&domain.Participant{ID: "p1", Team: testTeam, Username: "saltis", TotalPoints: 1,
			ObtainedItems: map[string]int{"Bosses.Nex.Hilt": 1}},
	)
	catRepo := newFakeCatalogRepo(testCatalog())
	locks := concurrency.NewLockManager()
	svc := NewService(repo, catRepo, catalog.NewService(catRepo), event.NewMemoryBus(), locks)

	// An acceptance-style write-back for the same team, fired while the pass
	// sits between its list read and its update. It must queue behind the
	// team lock; landing in between would let the pass overwrite the ledger
	// entry with the stale row it read.
	accepted := make(chan error, 1)
	repo.onListByTeam = func() {
		assert.False(t, locks.GetLock(testTeam).TryLock(), "pass must hold the team lock across the read-recompute-write cycle")
		go func() {
			accepted <- locks.WithLock(testTeam, func() error {
				p, err := repo.GetByID(context.Background(), "p1")
				if err != nil {
					return err
				}
				p.ObtainedItems["Bosses.Nex.Keystone"]++
				p.TotalPoints += 25
				return repo.Update(context.Background(), p)
			})
		}()
	}

	_, err := svc.RecalculateAll(context.Background())
	require.NoError(t, err)
	require.NoError(t, <-accepted)

	p1, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, p1.ObtainedItems["Bosses.Nex.Keystone"], "accepted item must survive the recalculation pass")
	assert.Equal(t, 1, p1.ObtainedItems["Bosses.Nex.Hilt"])
}

func TestRecalculateAll_CountsUpdateFailures(t *testing.T) {
	repo := newFakeParticipantRepo(
		&domain.Participant{ID: "p1", Team: testTeam, Username: "saltis", TotalPoints: 0,
			ObtainedItems: map[string]int{"Bosses.Nex.Hilt": 1}},
	)
	repo.failUpdate = assert.AnError
	svc, _ := newTestService(newFakeCatalogRepo(testCatalog()), repo)

	summary, err := svc.RecalculateAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ParticipantsChecked)
	assert.Equal(t, 0, summary.ParticipantsUpdated)
	assert.Equal(t, 1, summary.Errors)
}
