package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/clanfrenzy/frenzybot/internal/domain"
)

func autocompleteRouter(mockCat *MockCatalogService) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/catalog/{team}/tiers", HandleListTiers(mockCat))
	r.Get("/catalog/{team}/tiers/{tier}/sources", HandleListSources(mockCat))
	r.Get("/catalog/{team}/tiers/{tier}/sources/{source}/items", HandleListItems(mockCat))
	return r
}

func TestHandleListTiers(t *testing.T) {
	mockCat := &MockCatalogService{}
	mockCat.On("Tiers", mock.Anything, "ironfoundry").Return([]string{"Bosses", "Raids"}, nil)

	req := httptest.NewRequest("GET", "/catalog/ironfoundry/tiers", nil)
	w := httptest.NewRecorder()
	autocompleteRouter(mockCat).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `["Bosses","Raids"]`)
	mockCat.AssertExpectations(t)
}

func TestHandleListSources(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockCat := &MockCatalogService{}
		mockCat.On("Sources", mock.Anything, "ironfoundry", "Bosses").Return([]string{"Nex", "Zulrah"}, nil)

		req := httptest.NewRequest("GET", "/catalog/ironfoundry/tiers/Bosses/sources", nil)
		w := httptest.NewRecorder()
		autocompleteRouter(mockCat).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `["Nex","Zulrah"]`)
		mockCat.AssertExpectations(t)
	})

	t.Run("Unknown Tier", func(t *testing.T) {
		mockCat := &MockCatalogService{}
		mockCat.On("Sources", mock.Anything, "ironfoundry", "Pets").Return(nil, domain.ErrTierNotFound)

		req := httptest.NewRequest("GET", "/catalog/ironfoundry/tiers/Pets/sources", nil)
		w := httptest.NewRecorder()
		autocompleteRouter(mockCat).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgTierNotFoundError)
		mockCat.AssertExpectations(t)
	})
}

func TestHandleListItems(t *testing.T) {
	mockCat := &MockCatalogService{}
	mockCat.On("Items", mock.Anything, "ironfoundry", "Bosses", "Nex").
		Return([]string{"Nihil Horn", "Zaryte Vambraces"}, nil)

	req := httptest.NewRequest("GET", "/catalog/ironfoundry/tiers/Bosses/sources/Nex/items", nil)
	w := httptest.NewRecorder()
	autocompleteRouter(mockCat).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nihil Horn")
	mockCat.AssertExpectations(t)
}
