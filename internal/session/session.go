package session

import (
	"context"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
)

// Account is the authenticated user descriptor kept in the account cookie
type Account struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Token    string `json:"token"`
	Role     int    `json:"role"`
}

// Profile is the cached public profile kept in the user cookie
type Profile struct {
	Picture  string `json:"picture"`
	Element  string `json:"element"`
	Gender   int    `json:"gender"`
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// Session is the per-request view of the viewer's cookies.
// It replaces process-wide account state: handlers read it from the request context.
type Session struct {
	Account *Account
	Profile *Profile
	Locale  string
	LocalID string
}

// Authenticated reports whether the request carries an account with a token
func (s Session) Authenticated() bool {
	return s.Account != nil && s.Account.Token != ""
}

// UserID returns the authenticated user's id or ""
func (s Session) UserID() string {
	if s.Account == nil {
		return ""
	}
	return s.Account.UserID
}

// Token returns the bearer token or ""
func (s Session) Token() string {
	if s.Account == nil {
		return ""
	}
	return s.Account.Token
}

// IsEditor reports whether the account may edit catalog data
func (s Session) IsEditor() bool {
	return s.Account != nil && s.Account.Role >= domain.RoleEditor
}

type ctxKey struct{}

// WithSession returns a context carrying s
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the request's session, or an anonymous English session when none is set
func FromContext(ctx context.Context) Session {
	if s, ok := ctx.Value(ctxKey{}).(Session); ok {
		return s
	}
	return Session{Locale: domain.LocaleEnglish}
}
