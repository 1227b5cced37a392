package session

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
)

var (
	supportedTags = []language.Tag{language.English, language.Japanese}
	matcher       = language.NewMatcher(supportedTags)
)

// ParseLocale maps a language value to a supported locale
func ParseLocale(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case domain.LocaleEnglish:
		return domain.LocaleEnglish, true
	case domain.LocaleJapanese:
		return domain.LocaleJapanese, true
	default:
		return "", false
	}
}

// ResolveLocale picks the request's locale: query param, then locale cookie, then Accept-Language.
// The bool reports whether the query param chose it, so the caller can persist it.
func ResolveLocale(r *http.Request) (string, bool) {
	if locale, ok := ParseLocale(r.URL.Query().Get(LocaleParam)); ok {
		return locale, true
	}

	if cookie, err := r.Cookie(CookieLocale); err == nil {
		if locale, ok := ParseLocale(cookie.Value); ok {
			return locale, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get(headerAcceptLanguage)); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, index, confidence := matcher.Match(tags...)
			if confidence != language.No {
				base, _ := supportedTags[index].Base()
				return base.String(), false
			}
		}
	}

	return domain.LocaleEnglish, false
}
