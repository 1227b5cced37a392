package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GranblueTeam_Go/internal/catalog"
)

// CatalogHandler serves read-only catalog routes through the cache
type CatalogHandler struct {
	service catalog.Service
}

// NewCatalogHandler creates a catalog handler
func NewCatalogHandler(service catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// HandleGetObject returns one catalog object of the given resource
// @Summary Get catalog object
// @Description Characters, weapons, summons, jobs, raids and guidebooks by id
// @Tags catalog
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /api/summons/{id} [get]
func (h *CatalogHandler) HandleGetObject(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := h.service.Get(r.Context(), resource, chi.URLParam(r, ParamID), localeFrom(r))
		if err != nil {
			respondServiceError(w, r, "get "+resource, err)
			return
		}
		respondRaw(w, http.StatusOK, body)
	}
}

// HandleList returns a catalog collection such as jobs or raid groups
// @Summary List catalog collection
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/jobs [get]
func (h *CatalogHandler) HandleList(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := h.service.List(r.Context(), resource, r.URL.Query(), localeFrom(r))
		if err != nil {
			respondServiceError(w, r, "list "+resource, err)
			return
		}
		respondRaw(w, http.StatusOK, body)
	}
}

// HandleJobSkills lists the skills a job can equip
// @Summary Job skills
// @Tags catalog
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} map[string]interface{}
// @Router /api/jobs/{id}/skills [get]
func (h *CatalogHandler) HandleJobSkills(w http.ResponseWriter, r *http.Request) {
	body, err := h.service.JobSkills(r.Context(), chi.URLParam(r, ParamID), localeFrom(r))
	if err != nil {
		respondServiceError(w, r, "job skills", err)
		return
	}
	respondRaw(w, http.StatusOK, body)
}

// HandleJobAccessories lists the accessories available to a job
// @Summary Job accessories
// @Tags catalog
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} map[string]interface{}
// @Router /api/jobs/{id}/accessories [get]
func (h *CatalogHandler) HandleJobAccessories(w http.ResponseWriter, r *http.Request) {
	body, err := h.service.JobAccessories(r.Context(), chi.URLParam(r, ParamID), localeFrom(r))
	if err != nil {
		respondServiceError(w, r, "job accessories", err)
		return
	}
	respondRaw(w, http.StatusOK, body)
}

// CacheStatsResponse reports catalog cache effectiveness
type CacheStatsResponse struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// HandleCacheStats returns catalog cache counters
// @Summary Catalog cache stats
// @Tags catalog
// @Produce json
// @Success 200 {object} CacheStatsResponse
// @Router /api/catalog/stats [get]
func (h *CatalogHandler) HandleCacheStats(w http.ResponseWriter, r *http.Request) {
	stats := h.service.GetStats()
	respondJSON(w, http.StatusOK, CacheStatsResponse{Hits: stats.Hits, Misses: stats.Misses, Size: stats.Size})
}
