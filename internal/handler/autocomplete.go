package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clanfrenzy/frenzybot/internal/catalog"
)

// Autocomplete handlers back the Discord command option suggestions. They hit
// the catalog service's cached name index, so repeated keystrokes never reach
// the database.

// HandleListTiers lists tier names for a team
// @Summary List tiers
// @Tags catalog
// @Produce json
// @Param team path string true "Team name"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /catalog/{team}/tiers [get]
func HandleListTiers(catalogSvc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := chi.URLParam(r, "team")

		tiers, err := catalogSvc.Tiers(r.Context(), team)
		if err != nil {
			respondServiceError(w, r, "List tiers", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: tiers})
	}
}

// HandleListSources lists source names within a tier
// @Summary List sources
// @Tags catalog
// @Produce json
// @Param team path string true "Team name"
// @Param tier path string true "Tier name"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /catalog/{team}/tiers/{tier}/sources [get]
func HandleListSources(catalogSvc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := chi.URLParam(r, "team")
		tier := chi.URLParam(r, "tier")

		sources, err := catalogSvc.Sources(r.Context(), team, tier)
		if err != nil {
			respondServiceError(w, r, "List sources", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: sources})
	}
}

// HandleListItems lists item names within a source
// @Summary List items
// @Tags catalog
// @Produce json
// @Param team path string true "Team name"
// @Param tier path string true "Tier name"
// @Param source path string true "Source name"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /catalog/{team}/tiers/{tier}/sources/{source}/items [get]
func HandleListItems(catalogSvc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := chi.URLParam(r, "team")
		tier := chi.URLParam(r, "tier")
		source := chi.URLParam(r, "source")

		items, err := catalogSvc.Items(r.Context(), team, tier, source)
		if err != nil {
			respondServiceError(w, r, "List items", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}
