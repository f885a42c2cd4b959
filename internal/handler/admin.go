package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clanfrenzy/frenzybot/internal/catalog"
	"github.com/clanfrenzy/frenzybot/internal/logger"
	"github.com/clanfrenzy/frenzybot/internal/participant"
)

// HandleRecalculate runs a full participant recalculation pass
// @Summary Recalculate participant totals
// @Description Re-derives every participant's total from their obtained items against the live catalog
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/recalculate [post]
func HandleRecalculate(participantSvc participant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := participantSvc.RecalculateAll(r.Context())
		if err != nil {
			respondServiceError(w, r, "Recalculate totals", err)
			return
		}

		logger.FromContext(r.Context()).Info("Manual recalculation completed",
			"checked", summary.ParticipantsChecked,
			"updated", summary.ParticipantsUpdated,
			"errors", summary.Errors,
		)
		respondJSON(w, http.StatusOK, DataResponse{Message: "Recalculation completed", Data: summary})
	}
}

// HandleInvalidateCache drops a team's cached catalog name index
// @Summary Invalidate catalog cache
// @Description Forces the next autocomplete lookup to rebuild from the persisted catalog
// @Tags admin
// @Produce json
// @Param team path string true "Team name"
// @Success 200 {object} SuccessResponse
// @Router /admin/catalog/{team}/invalidate [post]
func HandleInvalidateCache(catalogSvc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := chi.URLParam(r, "team")
		catalogSvc.Invalidate(team)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Cache invalidated"})
	}
}
