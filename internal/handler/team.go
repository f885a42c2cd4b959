package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clanfrenzy/frenzybot/internal/catalog"
	"github.com/clanfrenzy/frenzybot/internal/domain"
	"github.com/clanfrenzy/frenzybot/internal/participant"
	"github.com/clanfrenzy/frenzybot/internal/scoring"
)

// TeamSnapshot is the full public view of one team: the live catalog with its
// derived totals plus the ranked participant list.
type TeamSnapshot struct {
	Catalog     *domain.Catalog           `json:"catalog"`
	TotalPoints float64                   `json:"total_points"`
	Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
}

// HandleGetTeam returns a team snapshot
// @Summary Get team snapshot
// @Description Returns the team's catalog, recomputed total and ranked participants
// @Tags team
// @Produce json
// @Param team path string true "Team name"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /team/{team} [get]
func HandleGetTeam(catalogSvc catalog.Service, participantSvc participant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := chi.URLParam(r, "team")

		c, err := catalogSvc.GetCatalog(r.Context(), team)
		if err != nil {
			respondServiceError(w, r, "Get team catalog", err)
			return
		}

		entries, err := participantSvc.Leaderboard(r.Context(), team, AllLeaderboardEntries)
		if err != nil {
			respondServiceError(w, r, "Get team participants", err)
			return
		}

		snapshot := TeamSnapshot{
			Catalog:     c,
			TotalPoints: scoring.RecomputeTotals(c),
			Leaderboard: entries,
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: snapshot})
	}
}

// HandleGetSourceMultipliers reports effective multipliers per source
// @Summary List source multipliers
// @Description Returns the effective factor currently applied to every source, with the multipliers contributing to it
// @Tags team
// @Produce json
// @Param team path string true "Team name"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /team/{team}/multipliers [get]
func HandleGetSourceMultipliers(catalogSvc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := chi.URLParam(r, "team")

		c, err := catalogSvc.GetCatalog(r.Context(), team)
		if err != nil {
			respondServiceError(w, r, "Get source multipliers", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: scoring.SourceFactors(c)})
	}
}

// HandleGetLeaderboard returns the ranked participant list for a team
// @Summary Get team leaderboard
// @Description Returns participants ranked by total points
// @Tags team
// @Produce json
// @Param team path string true "Team name"
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /team/{team}/leaderboard [get]
func HandleGetLeaderboard(participantSvc participant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := chi.URLParam(r, "team")

		limit := 0
		if raw := GetOptionalQueryParam(r, "limit", ""); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
			limit = parsed
		}

		entries, err := participantSvc.Leaderboard(r.Context(), team, limit)
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}
