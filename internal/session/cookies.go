package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// CookieOptions controls the attributes of cookies the gateway writes
type CookieOptions struct {
	Secure bool
	Domain string
	MaxAge time.Duration
}

// Manager reads and writes session cookies
type Manager struct {
	opts CookieOptions
}

// NewManager creates a cookie manager
func NewManager(opts CookieOptions) *Manager {
	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultCookieMaxAge
	}
	return &Manager{opts: opts}
}

// Read parses the session cookies on r. Malformed cookies are treated as absent.
func (m *Manager) Read(r *http.Request) Session {
	var s Session

	var account Account
	if readJSONCookie(r, CookieAccount, &account) && account.Token != "" {
		s.Account = &account
	}

	var profile Profile
	if readJSONCookie(r, CookieUser, &profile) {
		s.Profile = &profile
	}

	if cookie, err := r.Cookie(CookieLocalID); err == nil {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			s.LocalID = cookie.Value
		}
	}

	s.Locale, _ = ResolveLocale(r)
	return s
}

// SetAccount writes the account cookie. It is HttpOnly because it carries the bearer token.
func (m *Manager) SetAccount(w http.ResponseWriter, account Account) error {
	return m.writeJSONCookie(w, CookieAccount, account, true)
}

// SetProfile writes the user cookie, readable by the front end
func (m *Manager) SetProfile(w http.ResponseWriter, profile Profile) error {
	return m.writeJSONCookie(w, CookieUser, profile, false)
}

// SetLocale writes the locale cookie
func (m *Manager) SetLocale(w http.ResponseWriter, locale string) {
	http.SetCookie(w, m.cookie(CookieLocale, locale, false))
}

// SetLocalID writes the anonymous device token
func (m *Manager) SetLocalID(w http.ResponseWriter, localID string) {
	http.SetCookie(w, m.cookie(CookieLocalID, localID, true))
}

// Clear expires the account and user cookies. The device token and locale survive logout.
func (m *Manager) Clear(w http.ResponseWriter) {
	for _, name := range []string{CookieAccount, CookieUser} {
		c := m.cookie(name, "", name == CookieAccount)
		c.MaxAge = -1
		c.Expires = time.Unix(0, 0)
		http.SetCookie(w, c)
	}
}

func (m *Manager) cookie(name, value string, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   m.opts.Domain,
		MaxAge:   int(m.opts.MaxAge.Seconds()),
		Secure:   m.opts.Secure,
		HttpOnly: httpOnly,
		SameSite: http.SameSiteLaxMode,
	}
}

// writeJSONCookie stores v as URL-escaped JSON; raw JSON quotes are not valid cookie octets
func (m *Manager) writeJSONCookie(w http.ResponseWriter, name string, v interface{}, httpOnly bool) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	http.SetCookie(w, m.cookie(name, url.QueryEscape(string(data)), httpOnly))
	return nil
}

func readJSONCookie(r *http.Request, name string, out interface{}) bool {
	cookie, err := r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return false
	}
	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}
