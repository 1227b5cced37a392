package session

import "time"

// Cookie names shared with the front ends
const (
	CookieAccount = "account"
	CookieUser    = "user"
	CookieLocale  = "NEXT_LOCALE"
	CookieLocalID = "local_id"
)

// LocaleParam is the query parameter used to select a language
const LocaleParam = "locale"

// DefaultCookieMaxAge keeps session cookies for a year
const DefaultCookieMaxAge = 365 * 24 * time.Hour

const headerAcceptLanguage = "Accept-Language"

// Log messages
const LogMsgLocalIDIssued = "Issued device token"
