package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GranblueTeam_Go/internal/backend"
	"github.com/osse101/GranblueTeam_Go/internal/catalog"
	"github.com/osse101/GranblueTeam_Go/internal/domain"
	"github.com/osse101/GranblueTeam_Go/internal/editor"
	"github.com/osse101/GranblueTeam_Go/internal/logger"
	"github.com/osse101/GranblueTeam_Go/internal/session"
)

// WeaponUpdater writes catalog weapon edits to the backend
type WeaponUpdater interface {
	UpdateWeapon(ctx context.Context, creds backend.Credentials, weaponID string, payload interface{}) (*backend.Response, error)
}

// EditorHandler serves the catalog weapon edit form
type EditorHandler struct {
	catalog catalog.Service
	weapons WeaponUpdater
}

// NewEditorHandler creates an editor handler
func NewEditorHandler(catalogService catalog.Service, weapons WeaponUpdater) *EditorHandler {
	return &EditorHandler{catalog: catalogService, weapons: weapons}
}

// HandleGetWeaponForm returns a weapon flattened for the edit form
// @Summary Weapon edit form
// @Tags editor
// @Produce json
// @Param id path string true "Weapon id"
// @Success 200 {object} editor.WeaponEditData
// @Failure 404 {object} ErrorResponse
// @Router /api/weapons/{id}/edit [get]
func (h *EditorHandler) HandleGetWeaponForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, ParamID)
	body, err := h.catalog.Get(r.Context(), backend.ResourceWeapons, id, localeFrom(r))
	if err != nil {
		respondServiceError(w, r, "weapon form", err)
		return
	}

	var weapon domain.Weapon
	if err := backend.DecodeEnvelope(body, backend.EnvelopeKeyWeapon, &weapon); err != nil {
		respondServiceError(w, r, "weapon form", err)
		return
	}
	respondJSON(w, http.StatusOK, editor.ToEditData(weapon))
}

// HandleUpdateWeapon validates the edit form and writes it to the backend
// @Summary Update catalog weapon
// @Tags editor
// @Accept json
// @Produce json
// @Param id path string true "Weapon id"
// @Param request body editor.WeaponEditData true "Weapon form"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/weapons/{id} [put]
func (h *EditorHandler) HandleUpdateWeapon(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if !s.IsEditor() {
		respondError(w, http.StatusForbidden, ErrMsgForbidden)
		return
	}

	var form editor.WeaponEditData
	if err := DecodeAndValidateRequest(r, w, &form, "update weapon"); err != nil {
		return
	}
	id := chi.URLParam(r, ParamID)
	form.ID = id

	resp, err := h.weapons.UpdateWeapon(r.Context(), credentialsFrom(r), id, editor.ToPayload(form))
	if err != nil {
		respondServiceError(w, r, "update weapon", err)
		return
	}

	h.catalog.Invalidate(backend.ResourceWeapons, id)
	logger.FromContext(r.Context()).Info(LogMsgCatalogInvalidated, "resource", backend.ResourceWeapons, "id", id)
	respondBackend(w, resp)
}
