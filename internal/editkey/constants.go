package editkey

import "time"

// Store labels used for metrics and logs
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Defaults for the in-memory store
const (
	DefaultSize = 10000
	DefaultTTL  = 30 * 24 * time.Hour
)

// Error messages
const (
	ErrMsgMissingLocalID = "local id is required"
	ErrMsgMissingPartyID = "party id is required"
	ErrMsgMissingKey     = "edit key is required"
	ErrMsgQueryFailed    = "edit key query failed"
)

// Log messages
const (
	LogMsgEditKeyStored  = "Stored edit key"
	LogMsgEditKeyRemoved = "Removed edit key"
)
