package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GranblueTeam_Go/internal/backend"
)

// Profiles fetches public user profiles
type Profiles interface {
	GetUser(ctx context.Context, creds backend.Credentials, username string, query url.Values, locale string) (*backend.Response, error)
}

// HandleGetUser returns a user's profile and parties
// @Summary Get user profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Param page query int false "Page"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{username} [get]
func HandleGetUser(profiles Profiles) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := profiles.GetUser(r.Context(), credentialsFrom(r), chi.URLParam(r, ParamUsername), r.URL.Query(), localeFrom(r))
		if err != nil {
			respondServiceError(w, r, "get user", err)
			return
		}
		respondBackend(w, resp)
	}
}
