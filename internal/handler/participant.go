package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clanfrenzy/frenzybot/internal/participant"
)

// RegisterParticipantRequest is the body for resolving or creating a
// participant record from a Discord identity.
type RegisterParticipantRequest struct {
	DiscordID string `json:"discord_id" validate:"required,max=100"`
	Username  string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Team      string `json:"team" validate:"required,max=100"`
}

// HandleRegisterParticipant resolves a participant, creating one if needed
// @Summary Register a participant
// @Description Returns the participant record for a Discord identity, creating it on first contact
// @Tags participant
// @Accept json
// @Produce json
// @Param request body RegisterParticipantRequest true "Discord identity"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /participant/register [post]
func HandleRegisterParticipant(participantSvc participant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterParticipantRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register participant"); err != nil {
			return
		}

		p, err := participantSvc.GetOrCreate(r.Context(), req.DiscordID, req.Username, req.Team)
		if err != nil {
			respondServiceError(w, r, "Register participant", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: p})
	}
}

// HandleGetProfile returns a participant profile with recent submissions
// @Summary Get participant profile
// @Description Returns the participant's totals, obtained items and most recent submission decisions
// @Tags participant
// @Produce json
// @Param id path string true "Participant ID"
// @Param history query int false "Number of recent submissions to include"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /participant/{id} [get]
func HandleGetProfile(participantSvc participant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		historyLimit := 0
		if raw := GetOptionalQueryParam(r, "history", ""); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
			historyLimit = parsed
		}

		profile, err := participantSvc.GetProfile(r.Context(), id, historyLimit)
		if err != nil {
			respondServiceError(w, r, "Get participant profile", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: profile})
	}
}
