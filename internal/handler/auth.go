package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/osse101/GranblueTeam_Go/internal/backend"
	"github.com/osse101/GranblueTeam_Go/internal/domain"
	"github.com/osse101/GranblueTeam_Go/internal/logger"
	"github.com/osse101/GranblueTeam_Go/internal/session"
)

// Accounts is the backend surface for signing in and out
type Accounts interface {
	Login(ctx context.Context, email, password string) (*backend.TokenResponse, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, creds backend.Credentials, userID string) (*backend.Response, error)
}

// AuthHandler issues and clears session cookies
type AuthHandler struct {
	accounts Accounts
	sessions *session.Manager
}

// NewAuthHandler creates an auth handler
func NewAuthHandler(accounts Accounts, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions}
}

// LoginRequest is the sign in form
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

// AccountView is the account cookie without its token
type AccountView struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     int    `json:"role"`
}

// SessionResponse describes the signed-in viewer
type SessionResponse struct {
	Account *AccountView     `json:"account"`
	Profile *session.Profile `json:"profile"`
	Locale  string           `json:"locale"`
	Editor  bool             `json:"editor"`
}

// HandleLogin exchanges credentials for a token and writes the session cookies
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req LoginRequest
	if err := DecodeAndValidateRequest(r, w, &req, "login"); err != nil {
		return
	}

	token, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusBadRequest) {
			log.Warn(LogMsgLoginFailed, "status", apiErr.StatusCode)
			respondError(w, http.StatusUnauthorized, ErrMsgInvalidCredentials)
			return
		}
		respondServiceError(w, r, "login", err)
		return
	}

	account := session.Account{
		UserID:   token.User.ID,
		Username: token.User.Username,
		Token:    token.AccessToken,
		Role:     token.User.Role,
	}
	if err := h.sessions.SetAccount(w, account); err != nil {
		respondServiceError(w, r, "login", err)
		return
	}

	s := session.FromContext(r.Context())
	resp := SessionResponse{
		Account: viewOf(&account),
		Locale:  s.Locale,
		Editor:  account.Role >= domain.RoleEditor,
	}

	// the profile is cosmetic; a failure here leaves the viewer signed in
	profile, err := h.fetchProfile(r.Context(), account)
	if err != nil {
		log.Warn(LogMsgProfileFetchFailed, "user_id", account.UserID, "error", err)
	} else {
		if err := h.sessions.SetProfile(w, *profile); err != nil {
			log.Warn(LogMsgCookieWriteFailed, "cookie", session.CookieUser, "error", err)
		}
		if locale, ok := session.ParseLocale(profile.Language); ok {
			h.sessions.SetLocale(w, locale)
			resp.Locale = locale
		}
		resp.Profile = profile
	}

	log.Info(LogMsgLoginSucceeded, "user_id", account.UserID)
	respondJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) fetchProfile(ctx context.Context, account session.Account) (*session.Profile, error) {
	resp, err := h.accounts.GetUserInfo(ctx, backend.Credentials{Token: account.Token}, account.UserID)
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := backend.DecodeEnvelope(resp.Body, backend.EnvelopeKeyUser, &user); err != nil {
		return nil, err
	}

	profile := &session.Profile{
		Gender:   user.Gender,
		Language: user.Language,
		Theme:    user.Theme,
	}
	if user.Avatar != nil {
		profile.Picture = user.Avatar.Picture
		profile.Element = user.Avatar.Element
	}
	return profile, nil
}

// HandleLogout revokes the token and clears the session cookies
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/logout [post]
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if token := session.FromContext(r.Context()).Token(); token != "" {
		if err := h.accounts.Logout(r.Context(), token); err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgLogoutRevokeFailed, "error", err)
		}
	}
	h.sessions.Clear(w)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoggedOut})
}

// HandleSession returns the current viewer
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /api/session [get]
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	respondJSON(w, http.StatusOK, SessionResponse{
		Account: viewOf(s.Account),
		Profile: s.Profile,
		Locale:  s.Locale,
		Editor:  s.IsEditor(),
	})
}

// SettingsRequest updates gateway-held preferences
type SettingsRequest struct {
	Locale string `json:"locale" validate:"required,oneof=en ja"`
	Theme  string `json:"theme,omitempty" validate:"omitempty,oneof=system light dark"`
}

// HandleSettings stores display preferences in the session cookies
// @Summary Update preferences
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SettingsRequest true "Preferences"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/session/settings [put]
func (h *AuthHandler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "settings"); err != nil {
		return
	}

	h.sessions.SetLocale(w, req.Locale)
	if s := session.FromContext(r.Context()); s.Profile != nil {
		profile := *s.Profile
		profile.Language = req.Locale
		if req.Theme != "" {
			profile.Theme = req.Theme
		}
		if err := h.sessions.SetProfile(w, profile); err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgCookieWriteFailed, "cookie", session.CookieUser, "error", err)
		}
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSettingsSet})
}

func viewOf(a *session.Account) *AccountView {
	if a == nil {
		return nil
	}
	return &AccountView{UserID: a.UserID, Username: a.Username, Role: a.Role}
}
