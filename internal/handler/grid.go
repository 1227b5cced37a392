package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
	"github.com/osse101/GranblueTeam_Go/internal/validation"
)

var gridSchemas = map[string]string{
	domain.CategoryWeapon:    validation.SchemaGridWeapon,
	domain.CategorySummon:    validation.SchemaGridSummon,
	domain.CategoryCharacter: validation.SchemaGridCharacter,
}

// gridTarget reads the party and category path params, writing a 404 for unknown categories
func gridTarget(w http.ResponseWriter, r *http.Request) (partyID, category, schema string, ok bool) {
	partyID = chi.URLParam(r, ParamParty)
	category = chi.URLParam(r, ParamCategory)
	schema, ok = gridSchemas[category]
	if !ok {
		respondServiceError(w, r, "grid item", domain.ErrUnknownCategory)
	}
	return partyID, category, schema, ok
}

// HandleCreateGridItem places a weapon, summon or character in a party
// @Summary Add grid item
// @Tags grid
// @Accept json
// @Produce json
// @Param party path string true "Party id"
// @Param category path string true "weapon, summon or character"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/parties/{party}/grid/{category} [post]
func (h *PartyHandler) HandleCreateGridItem(w http.ResponseWriter, r *http.Request) {
	partyID, category, schema, ok := gridTarget(w, r)
	if !ok {
		return
	}
	body, err := readValidatedBody(w, r, h.bodies, schema, "create grid item")
	if err != nil {
		return
	}
	resp, err := h.service.CreateGridItem(r.Context(), actorFrom(r), partyID, category, body)
	if err != nil {
		respondServiceError(w, r, "create grid item", err)
		return
	}
	respondBackend(w, resp)
}

// HandleUpdateGridItem edits a placed grid item
// @Summary Update grid item
// @Tags grid
// @Accept json
// @Produce json
// @Param party path string true "Party id"
// @Param category path string true "weapon, summon or character"
// @Param gridID path string true "Grid item id"
// @Success 200 {object} map[string]interface{}
// @Router /api/parties/{party}/grid/{category}/{gridID} [put]
func (h *PartyHandler) HandleUpdateGridItem(w http.ResponseWriter, r *http.Request) {
	partyID, category, schema, ok := gridTarget(w, r)
	if !ok {
		return
	}
	body, err := readValidatedBody(w, r, h.bodies, schema, "update grid item")
	if err != nil {
		return
	}
	resp, err := h.service.UpdateGridItem(r.Context(), actorFrom(r), partyID, category, chi.URLParam(r, ParamGridID), body)
	if err != nil {
		respondServiceError(w, r, "update grid item", err)
		return
	}
	respondBackend(w, resp)
}

// HandleDeleteGridItem removes a grid item from a party
// @Summary Remove grid item
// @Tags grid
// @Param party path string true "Party id"
// @Param category path string true "weapon, summon or character"
// @Param gridID path string true "Grid item id"
// @Success 200 {object} map[string]interface{}
// @Success 204
// @Router /api/parties/{party}/grid/{category}/{gridID} [delete]
func (h *PartyHandler) HandleDeleteGridItem(w http.ResponseWriter, r *http.Request) {
	partyID, category, _, ok := gridTarget(w, r)
	if !ok {
		return
	}
	resp, err := h.service.DeleteGridItem(r.Context(), actorFrom(r), partyID, category, chi.URLParam(r, ParamGridID))
	if err != nil {
		respondServiceError(w, r, "delete grid item", err)
		return
	}
	respondBackend(w, resp)
}

// HandleUpdateUncap changes a grid item's uncap level and transcendence step
// @Summary Update uncap
// @Tags grid
// @Accept json
// @Produce json
// @Param party path string true "Party id"
// @Param category path string true "weapon, summon or character"
// @Param gridID path string true "Grid item id"
// @Success 200 {object} map[string]interface{}
// @Router /api/parties/{party}/grid/{category}/{gridID}/uncap [put]
func (h *PartyHandler) HandleUpdateUncap(w http.ResponseWriter, r *http.Request) {
	partyID, category, _, ok := gridTarget(w, r)
	if !ok {
		return
	}
	body, err := readValidatedBody(w, r, h.bodies, validation.SchemaUncap, "update uncap")
	if err != nil {
		return
	}
	resp, err := h.service.UpdateUncap(r.Context(), actorFrom(r), partyID, category, chi.URLParam(r, ParamGridID), body)
	if err != nil {
		respondServiceError(w, r, "update uncap", err)
		return
	}
	respondBackend(w, resp)
}
