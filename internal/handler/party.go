package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GranblueTeam_Go/internal/party"
	"github.com/osse101/GranblueTeam_Go/internal/validation"
)

// PartyHandler serves party routes
type PartyHandler struct {
	service party.Service
	bodies  validation.BodyValidator
}

// NewPartyHandler creates a party handler
func NewPartyHandler(service party.Service, bodies validation.BodyValidator) *PartyHandler {
	return &PartyHandler{service: service, bodies: bodies}
}

// HandleGetParty returns a party with its grid view model
// @Summary Get party
// @Description Fetches a party by shortcode and partitions its grid into main, friend and slotted items
// @Tags parties
// @Produce json
// @Param party path string true "Party shortcode"
// @Success 200 {object} party.View
// @Failure 404 {object} ErrorResponse
// @Router /api/parties/{party} [get]
func (h *PartyHandler) HandleGetParty(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), actorFrom(r), chi.URLParam(r, ParamParty))
	if err != nil {
		respondServiceError(w, r, "get party", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleListParties lists parties, passing filters through to the backend
// @Summary List parties
// @Tags parties
// @Produce json
// @Param element query int false "Element filter"
// @Param raid query string false "Raid id"
// @Param recency query int false "Created within seconds"
// @Param page query int false "Page"
// @Success 200 {object} map[string]interface{}
// @Router /api/parties [get]
func (h *PartyHandler) HandleListParties(w http.ResponseWriter, r *http.Request) {
	body, err := h.service.List(r.Context(), actorFrom(r), r.URL.Query())
	if err != nil {
		respondServiceError(w, r, "list parties", err)
		return
	}
	respondRaw(w, http.StatusOK, body)
}

// HandleCreateParty creates a party; anonymous parties are bound to the device
// @Summary Create party
// @Tags parties
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/parties [post]
func (h *PartyHandler) HandleCreateParty(w http.ResponseWriter, r *http.Request) {
	body, err := readValidatedBody(w, r, h.bodies, validation.SchemaParty, "create party")
	if err != nil {
		return
	}
	resp, err := h.service.Create(r.Context(), actorFrom(r), body)
	if err != nil {
		respondServiceError(w, r, "create party", err)
		return
	}
	respondBackend(w, resp)
}

// HandleUpdateParty updates party details
// @Summary Update party
// @Tags parties
// @Accept json
// @Produce json
// @Param party path string true "Party id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/parties/{party} [put]
func (h *PartyHandler) HandleUpdateParty(w http.ResponseWriter, r *http.Request) {
	body, err := readValidatedBody(w, r, h.bodies, validation.SchemaParty, "update party")
	if err != nil {
		return
	}
	resp, err := h.service.Update(r.Context(), actorFrom(r), chi.URLParam(r, ParamParty), body)
	if err != nil {
		respondServiceError(w, r, "update party", err)
		return
	}
	respondBackend(w, resp)
}

// HandleDeleteParty deletes a party
// @Summary Delete party
// @Tags parties
// @Param party path string true "Party id"
// @Success 200 {object} map[string]interface{}
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /api/parties/{party} [delete]
func (h *PartyHandler) HandleDeleteParty(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Delete(r.Context(), actorFrom(r), chi.URLParam(r, ParamParty))
	if err != nil {
		respondServiceError(w, r, "delete party", err)
		return
	}
	respondBackend(w, resp)
}

// HandleRemixParty copies a party into a new one owned by the viewer
// @Summary Remix party
// @Tags parties
// @Produce json
// @Param party path string true "Source party shortcode"
// @Success 201 {object} map[string]interface{}
// @Router /api/parties/{party}/remix [post]
func (h *PartyHandler) HandleRemixParty(w http.ResponseWriter, r *http.Request) {
	var body []byte
	if r.ContentLength != 0 {
		var err error
		if body, err = readValidatedBody(w, r, h.bodies, validation.SchemaParty, "remix party"); err != nil {
			return
		}
	}
	resp, err := h.service.Remix(r.Context(), actorFrom(r), chi.URLParam(r, ParamParty), body)
	if err != nil {
		respondServiceError(w, r, "remix party", err)
		return
	}
	respondBackend(w, resp)
}

// HandleFavorite saves a party to the viewer's favorites
// @Summary Favorite party
// @Tags parties
// @Param party path string true "Party id"
// @Success 200 {object} map[string]interface{}
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /api/parties/{party}/favorite [post]
func (h *PartyHandler) HandleFavorite(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Favorite(r.Context(), actorFrom(r), chi.URLParam(r, ParamParty))
	if err != nil {
		respondServiceError(w, r, "favorite", err)
		return
	}
	respondBackend(w, resp)
}

// HandleUnfavorite removes a party from the viewer's favorites
// @Summary Unfavorite party
// @Tags parties
// @Param party path string true "Party id"
// @Success 200 {object} map[string]interface{}
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /api/parties/{party}/favorite [delete]
func (h *PartyHandler) HandleUnfavorite(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Unfavorite(r.Context(), actorFrom(r), chi.URLParam(r, ParamParty))
	if err != nil {
		respondServiceError(w, r, "unfavorite", err)
		return
	}
	respondBackend(w, resp)
}
