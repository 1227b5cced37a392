package validation

// Schema names for request bodies forwarded to the backend
const (
	SchemaParty         = "party"
	SchemaGridWeapon    = "grid_weapon"
	SchemaGridSummon    = "grid_summon"
	SchemaGridCharacter = "grid_character"
	SchemaUncap         = "uncap"
)

const (
	schemaDir     = "schemas"
	schemaBaseURL = "https://granblue.team/schemas/"
)

// Error messages
const (
	ErrMsgUnknownSchema    = "unknown schema"
	ErrMsgMalformedJSON    = "request body is not valid JSON"
	ErrMsgSchemaValidation = "request body failed schema validation"
	ErrMsgCompileSchema    = "failed to compile schema"
)
