package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/clanfrenzy/frenzybot/internal/domain"
	"github.com/clanfrenzy/frenzybot/internal/participant"
	"github.com/clanfrenzy/frenzybot/internal/submission"
)

// MockSubmissionService mocks the submission.Service interface
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Accept(ctx context.Context, req submission.AcceptRequest) (*submission.AcceptResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*submission.AcceptResult), args.Error(1)
}

func (m *MockSubmissionService) Deny(ctx context.Context, req submission.DenyRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockParticipantService mocks the participant.Service interface
type MockParticipantService struct {
	mock.Mock
}

func (m *MockParticipantService) GetOrCreate(ctx context.Context, discordID, username, team string) (*domain.Participant, error) {
	args := m.Called(ctx, discordID, username, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}

func (m *MockParticipantService) GetProfile(ctx context.Context, participantID string, historyLimit int) (*participant.Profile, error) {
	args := m.Called(ctx, participantID, historyLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*participant.Profile), args.Error(1)
}

func (m *MockParticipantService) Leaderboard(ctx context.Context, team string, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, team, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockParticipantService) RecalculateAll(ctx context.Context) (*participant.RecalcSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*participant.RecalcSummary), args.Error(1)
}

func TestHandleAcceptSubmission(t *testing.T) {
	InitValidator()

	validBody := AcceptSubmissionRequest{
		Team:       "ironfoundry",
		Tier:       "Bosses",
		Source:     "Nex",
		Item:       "Nihil Horn",
		DiscordID:  "1234",
		Username:   "mika",
		ReviewerID: "9999",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockSubmissionService, *MockParticipantService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: validBody,
			setupMocks: func(s *MockSubmissionService, p *MockParticipantService) {
				p.On("GetOrCreate", mock.Anything, "1234", "mika", "ironfoundry").
					Return(&domain.Participant{ID: "p-1", DiscordID: "1234"}, nil)
				s.On("Accept", mock.Anything, mock.MatchedBy(func(req submission.AcceptRequest) bool {
					return req.ParticipantID == "p-1" && req.Item == "Nihil Horn" && req.ReviewerID == "9999"
				})).Return(&submission.AcceptResult{
					SubmissionID:     "sub-1",
					PointsAwarded:    25,
					ParticipantTotal: 125,
					NewObtained:      1,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"points_awarded":25`,
		},
		{
			name: "Invalid Request - Missing Item",
			requestBody: AcceptSubmissionRequest{
				Team:       "ironfoundry",
				Tier:       "Bosses",
				Source:     "Nex",
				DiscordID:  "1234",
				Username:   "mika",
				ReviewerID: "9999",
			},
			setupMocks:     func(s *MockSubmissionService, p *MockParticipantService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid request",
		},
		{
			name:        "Item Already Maxed",
			requestBody: validBody,
			setupMocks: func(s *MockSubmissionService, p *MockParticipantService) {
				p.On("GetOrCreate", mock.Anything, "1234", "mika", "ironfoundry").
					Return(&domain.Participant{ID: "p-1"}, nil)
				s.On("Accept", mock.Anything, mock.Anything).Return(nil, domain.ErrItemMaxed)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgItemMaxedError,
		},
		{
			name:        "Unknown Item",
			requestBody: validBody,
			setupMocks: func(s *MockSubmissionService, p *MockParticipantService) {
				p.On("GetOrCreate", mock.Anything, "1234", "mika", "ironfoundry").
					Return(&domain.Participant{ID: "p-1"}, nil)
				s.On("Accept", mock.Anything, mock.Anything).Return(nil, domain.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgItemNotFoundError,
		},
		{
			name:        "Participant Resolution Fails",
			requestBody: validBody,
			setupMocks: func(s *MockSubmissionService, p *MockParticipantService) {
				p.On("GetOrCreate", mock.Anything, "1234", "mika", "ironfoundry").
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSub := &MockSubmissionService{}
			mockPart := &MockParticipantService{}
			tt.setupMocks(mockSub, mockPart)

			handler := HandleAcceptSubmission(mockSub, mockPart)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/submission/accept", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSub.AssertExpectations(t)
			mockPart.AssertExpectations(t)
		})
	}
}

func TestHandleDenySubmission(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockSubmissionService, *MockParticipantService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			requestBody: DenySubmissionRequest{
				Team:       "ironfoundry",
				Tier:       "Bosses",
				Source:     "Nex",
				Item:       "Nihil Horn",
				DiscordID:  "1234",
				Username:   "mika",
				ReviewerID: "9999",
			},
			setupMocks: func(s *MockSubmissionService, p *MockParticipantService) {
				p.On("GetOrCreate", mock.Anything, "1234", "mika", "ironfoundry").
					Return(&domain.Participant{ID: "p-1"}, nil)
				s.On("Deny", mock.Anything, mock.MatchedBy(func(req submission.DenyRequest) bool {
					return req.ParticipantID == "p-1" && req.Item == "Nihil Horn"
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Submission denied",
		},
		{
			name:           "Invalid Request - Empty Body",
			requestBody:    DenySubmissionRequest{},
			setupMocks:     func(s *MockSubmissionService, p *MockParticipantService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid request",
		},
		{
			name: "Unknown Team",
			requestBody: DenySubmissionRequest{
				Team:       "nosuchteam",
				Tier:       "Bosses",
				Source:     "Nex",
				Item:       "Nihil Horn",
				DiscordID:  "1234",
				Username:   "mika",
				ReviewerID: "9999",
			},
			setupMocks: func(s *MockSubmissionService, p *MockParticipantService) {
				p.On("GetOrCreate", mock.Anything, "1234", "mika", "nosuchteam").
					Return(&domain.Participant{ID: "p-1"}, nil)
				s.On("Deny", mock.Anything, mock.Anything).Return(domain.ErrTeamNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgTeamNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSub := &MockSubmissionService{}
			mockPart := &MockParticipantService{}
			tt.setupMocks(mockSub, mockPart)

			handler := HandleDenySubmission(mockSub, mockPart)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/submission/deny", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSub.AssertExpectations(t)
			mockPart.AssertExpectations(t)
		})
	}
}
