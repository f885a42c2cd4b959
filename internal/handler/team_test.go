package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/clanfrenzy/frenzybot/internal/domain"
)

// MockCatalogService mocks the catalog.Service interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetCatalog(ctx context.Context, team string) (*domain.Catalog, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Catalog), args.Error(1)
}

func (m *MockCatalogService) Tiers(ctx context.Context, team string) ([]string, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) Sources(ctx context.Context, team, tier string) ([]string, error) {
	args := m.Called(ctx, team, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) Items(ctx context.Context, team, tier, source string) ([]string, error) {
	args := m.Called(ctx, team, tier, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) Invalidate(team string) {
	m.Called(team)
}

func snapshotCatalog() *domain.Catalog {
	return &domain.Catalog{
		Team: "ironfoundry",
		Tiers: map[string]*domain.Tier{
			"Bosses": {
				Sources: []*domain.Source{
					{
						Name: "Nex",
						Items: []*domain.Item{
							{Name: "Nihil Horn", BasePoints: 10, UniqueRequired: 1, Obtained: 1},
						},
					},
				},
			},
		},
		Multipliers: []*domain.Multiplier{
			{Name: "Surge", Factor: 2.0, Affects: []string{"Nex"}, Unlocked: true},
		},
	}
}

func TestHandleGetTeam(t *testing.T) {
	tests := []struct {
		name           string
		team           string
		setupMocks     func(*MockCatalogService, *MockParticipantService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			team: "ironfoundry",
			setupMocks: func(c *MockCatalogService, p *MockParticipantService) {
				c.On("GetCatalog", mock.Anything, "ironfoundry").Return(snapshotCatalog(), nil)
				p.On("Leaderboard", mock.Anything, "ironfoundry", AllLeaderboardEntries).Return([]domain.LeaderboardEntry{
					{Rank: 1, Username: "mika", TotalPoints: 25},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			// Nihil Horn obtained once, base 10, Surge x2, completion x1.25
			expectedBody: `"total_points":25`,
		},
		{
			name: "Unknown Team",
			team: "nosuchteam",
			setupMocks: func(c *MockCatalogService, p *MockParticipantService) {
				c.On("GetCatalog", mock.Anything, "nosuchteam").Return(nil, domain.ErrTeamNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgTeamNotFoundError,
		},
		{
			name: "Malformed Catalog",
			team: "ironfoundry",
			setupMocks: func(c *MockCatalogService, p *MockParticipantService) {
				c.On("GetCatalog", mock.Anything, "ironfoundry").Return(nil, domain.ErrInvalidCatalog)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgInvalidCatalogError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCat := &MockCatalogService{}
			mockPart := &MockParticipantService{}
			tt.setupMocks(mockCat, mockPart)

			r := chi.NewRouter()
			r.Get("/team/{team}", HandleGetTeam(mockCat, mockPart))

			req := httptest.NewRequest("GET", "/team/"+tt.team, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockCat.AssertExpectations(t)
			mockPart.AssertExpectations(t)
		})
	}
}

func TestHandleGetSourceMultipliers(t *testing.T) {
	mockCat := &MockCatalogService{}
	mockCat.On("GetCatalog", mock.Anything, "ironfoundry").Return(snapshotCatalog(), nil)

	r := chi.NewRouter()
	r.Get("/team/{team}/multipliers", HandleGetSourceMultipliers(mockCat))

	req := httptest.NewRequest("GET", "/team/ironfoundry/multipliers", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source":"Nex"`)
	assert.Contains(t, w.Body.String(), `"factor":2.5`)
	assert.Contains(t, w.Body.String(), `"applied_by":["Surge"]`)
	mockCat.AssertExpectations(t)
}

func TestHandleGetLeaderboard(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockParticipantService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Default Limit",
			url:  "/team/ironfoundry/leaderboard",
			setupMock: func(p *MockParticipantService) {
				p.On("Leaderboard", mock.Anything, "ironfoundry", 0).Return([]domain.LeaderboardEntry{
					{Rank: 1, Username: "mika", TotalPoints: 50},
					{Rank: 2, Username: "abel", TotalPoints: 30},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"username":"mika"`,
		},
		{
			name: "Explicit Limit",
			url:  "/team/ironfoundry/leaderboard?limit=5",
			setupMock: func(p *MockParticipantService) {
				p.On("Leaderboard", mock.Anything, "ironfoundry", 5).Return([]domain.LeaderboardEntry{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid Limit",
			url:            "/team/ironfoundry/leaderboard?limit=banana",
			setupMock:      func(p *MockParticipantService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPart := &MockParticipantService{}
			tt.setupMock(mockPart)

			r := chi.NewRouter()
			r.Get("/team/{team}/leaderboard", HandleGetLeaderboard(mockPart))

			req := httptest.NewRequest("GET", tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockPart.AssertExpectations(t)
		})
	}
}
