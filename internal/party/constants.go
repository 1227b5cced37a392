package party

// JSON field names read from and written to party bodies
const (
	fieldParty   = "party"
	fieldID      = "id"
	fieldEditKey = "edit_key"
	fieldLocalID = "local_id"
)

// Log messages
const (
	LogMsgGridConflict      = "Party grid violates slot rules, resolved by first match"
	LogMsgEditKeyLookupFail = "Edit key lookup failed, continuing without key"
	LogMsgEditKeySaveFail   = "Failed to store edit key"
	LogMsgEditKeyCleanFail  = "Failed to remove edit key"
	LogMsgPartyCreated      = "Party created"
	LogMsgPartyRemixed      = "Party remixed"
	LogMsgPartyDeleted      = "Party deleted"
)

// Error messages
const (
	ErrMsgMissingShortcode = "shortcode is required"
	ErrMsgMissingPartyID   = "party id is required"
	ErrMsgMissingGridID    = "grid item id is required"
)
