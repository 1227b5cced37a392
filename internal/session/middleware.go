package session

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/osse101/GranblueTeam_Go/internal/logger"
)

// Middleware resolves the Session from cookies and stores it in the request context.
// A device token is issued on first visit, and a locale chosen by query param is persisted.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := m.Read(r)

		if s.LocalID == "" {
			s.LocalID = uuid.NewString()
			m.SetLocalID(w, s.LocalID)
			logger.FromContext(r.Context()).Debug(LogMsgLocalIDIssued, "local_id", s.LocalID)
		}

		if locale, fromQuery := ResolveLocale(r); fromQuery {
			m.SetLocale(w, locale)
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}

// RequireAccount rejects requests without an authenticated account
func RequireAccount(onDenied http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !FromContext(r.Context()).Authenticated() {
				onDenied(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
