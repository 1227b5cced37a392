package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GranblueTeam_Go/internal/backend"
	"github.com/osse101/GranblueTeam_Go/internal/logger"
	"github.com/osse101/GranblueTeam_Go/internal/metrics"
	"github.com/osse101/GranblueTeam_Go/internal/search"
)

// Searcher runs a catalog search on the backend
type Searcher interface {
	Search(ctx context.Context, creds backend.Credentials, object string, payload interface{}, locale string) (*backend.Response, error)
}

// SearchHandler translates UI filter selections into backend searches
type SearchHandler struct {
	searcher Searcher
}

// NewSearchHandler creates a search handler
func NewSearchHandler(searcher Searcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// HandleSearch runs a search described by a JSON body
// @Summary Search catalog
// @Description Filters are translated to the backend wire format; empty selections are omitted
// @Tags search
// @Accept json
// @Produce json
// @Param object path string true "characters, weapons, summons, job_skills or guidebooks"
// @Param request body search.Request true "Search"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/search/{object} [post]
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req search.Request
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgDecodeFailed, "action", "search", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
	}
	req.Object = chi.URLParam(r, ParamObject)
	h.run(w, r, req)
}

// HandleSearchQuery runs a search described by query parameters
// @Summary Search catalog by query string
// @Tags search
// @Produce json
// @Param object path string true "characters, weapons, summons, job_skills or guidebooks"
// @Param query query string false "Text query"
// @Param element query string false "Element id, or comma separated ids"
// @Param page query int false "Page"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/search/{object} [get]
func (h *SearchHandler) HandleSearchQuery(w http.ResponseWriter, r *http.Request) {
	req, err := search.ParseQuery(chi.URLParam(r, ParamObject), r.URL.Query())
	if err != nil {
		respondServiceError(w, r, "search", err)
		return
	}
	h.run(w, r, req)
}

func (h *SearchHandler) run(w http.ResponseWriter, r *http.Request, req search.Request) {
	if req.Locale == "" {
		req.Locale = localeFrom(r)
	}
	if err := validateRequest(w, r, &req, "search"); err != nil {
		return
	}

	resp, err := h.searcher.Search(r.Context(), credentialsFrom(r), req.Object, search.BuildPayload(req), req.Locale)
	if err != nil {
		respondServiceError(w, r, "search "+req.Object, err)
		return
	}
	metrics.SearchesPerformed.WithLabelValues(req.Object).Inc()
	respondBackend(w, resp)
}
