package handler

import (
	"net/http"

	"github.com/clanfrenzy/frenzybot/internal/logger"
	"github.com/clanfrenzy/frenzybot/internal/participant"
	"github.com/clanfrenzy/frenzybot/internal/submission"
)

// AcceptSubmissionRequest is the body for accepting a drop submission. The
// submitter is identified by Discord ID; the participant record is created on
// first contact.
type AcceptSubmissionRequest struct {
	Team          string `json:"team" validate:"required,max=100"`
	Tier          string `json:"tier" validate:"required,max=100"`
	Source        string `json:"source" validate:"required,max=100"`
	Item          string `json:"item" validate:"required,max=200"`
	DiscordID     string `json:"discord_id" validate:"required,max=100"`
	Username      string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ReviewerID    string `json:"reviewer_id" validate:"required,max=100"`
	ScreenshotURL string `json:"screenshot_url" validate:"omitempty,url"`
}

// DenySubmissionRequest is the body for denying a drop submission.
type DenySubmissionRequest struct {
	Team       string `json:"team" validate:"required,max=100"`
	Tier       string `json:"tier" validate:"required,max=100"`
	Source     string `json:"source" validate:"required,max=100"`
	Item       string `json:"item" validate:"required,max=200"`
	DiscordID  string `json:"discord_id" validate:"required,max=100"`
	Username   string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ReviewerID string `json:"reviewer_id" validate:"required,max=100"`
}

// HandleAcceptSubmission processes a reviewer's accept decision
// @Summary Accept a submission
// @Description Credits the item to the team, re-scores affected sources and attributes the marginal points to the submitter
// @Tags submission
// @Accept json
// @Produce json
// @Param request body AcceptSubmissionRequest true "Submission details"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Item already maxed"
// @Failure 500 {object} ErrorResponse
// @Router /submission/accept [post]
func HandleAcceptSubmission(submissionSvc submission.Service, participantSvc participant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AcceptSubmissionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Accept submission"); err != nil {
			return
		}

		p, err := participantSvc.GetOrCreate(r.Context(), req.DiscordID, req.Username, req.Team)
		if err != nil {
			respondServiceError(w, r, "Resolve participant", err)
			return
		}

		result, err := submissionSvc.Accept(r.Context(), submission.AcceptRequest{
			Team:          req.Team,
			Tier:          req.Tier,
			Source:        req.Source,
			Item:          req.Item,
			ParticipantID: p.ID,
			ReviewerID:    req.ReviewerID,
			ScreenshotURL: req.ScreenshotURL,
		})
		if err != nil {
			respondServiceError(w, r, "Accept submission", err)
			return
		}

		logger.FromContext(r.Context()).Info("Submission accepted",
			"team", req.Team,
			"item", req.Item,
			"participant_id", p.ID,
			"points", result.PointsAwarded,
		)
		respondJSON(w, http.StatusOK, DataResponse{Data: result})
	}
}

// HandleDenySubmission processes a reviewer's deny decision
// @Summary Deny a submission
// @Description Records the denial in the submitter's history without changing any score
// @Tags submission
// @Accept json
// @Produce json
// @Param request body DenySubmissionRequest true "Submission details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /submission/deny [post]
func HandleDenySubmission(submissionSvc submission.Service, participantSvc participant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DenySubmissionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Deny submission"); err != nil {
			return
		}

		p, err := participantSvc.GetOrCreate(r.Context(), req.DiscordID, req.Username, req.Team)
		if err != nil {
			respondServiceError(w, r, "Resolve participant", err)
			return
		}

		err = submissionSvc.Deny(r.Context(), submission.DenyRequest{
			Team:          req.Team,
			Tier:          req.Tier,
			Source:        req.Source,
			Item:          req.Item,
			ParticipantID: p.ID,
			ReviewerID:    req.ReviewerID,
		})
		if err != nil {
			respondServiceError(w, r, "Deny submission", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Submission denied"})
	}
}
