package backend

import "time"

// DefaultTimeout bounds a single backend request
const DefaultTimeout = 10 * time.Second

// MaxResponseBytes caps how much of a backend response body is read
const MaxResponseBytes = 8 << 20

// Request headers
const (
	HeaderAuthorization  = "Authorization"
	HeaderEditKey        = "X-Edit-Key"
	HeaderAcceptLanguage = "Accept-Language"
	HeaderContentType    = "Content-Type"
	HeaderAccept         = "Accept"
	HeaderRequestID      = "X-Request-ID"
	BearerPrefix         = "Bearer "
	ContentTypeJSON      = "application/json"
)

// Endpoint labels used for metrics and logs
const (
	EndpointPartyGet       = "party.get"
	EndpointPartyList      = "party.list"
	EndpointPartyCreate    = "party.create"
	EndpointPartyUpdate    = "party.update"
	EndpointPartyDelete    = "party.delete"
	EndpointPartyRemix     = "party.remix"
	EndpointFavoriteAdd    = "favorite.add"
	EndpointFavoriteRemove = "favorite.remove"
	EndpointGridCreate     = "grid.create"
	EndpointGridUpdate     = "grid.update"
	EndpointGridDelete     = "grid.delete"
	EndpointGridUncap      = "grid.uncap"
	EndpointCatalogGet     = "catalog.get"
	EndpointCatalogList    = "catalog.list"
	EndpointJobSkills      = "job.skills"
	EndpointJobAccessories = "job.accessories"
	EndpointSearch         = "search"
	EndpointLogin          = "oauth.token"
	EndpointLogout         = "oauth.revoke"
	EndpointUserGet        = "user.get"
	EndpointUserInfo       = "user.info"
	EndpointVersion        = "version"
	EndpointWeaponUpdate   = "weapon.update"
)

// Catalog resources
const (
	ResourceCharacters  = "characters"
	ResourceWeapons     = "weapons"
	ResourceSummons     = "summons"
	ResourceJobs        = "jobs"
	ResourceRaids       = "raids"
	ResourceRaidGroups  = "raids/groups"
	ResourceGuidebooks  = "guidebooks"
	ResourceWeaponKeys  = "weapon_keys"
	ResourceAccessories = "accessories"
	ResourceSkills      = "skills"
)

// Backend paths
const (
	pathParties     = "/parties"
	pathFavorites   = "/favorites"
	pathSearch      = "/search"
	pathOAuthToken  = "/oauth/token"
	pathOAuthRevoke = "/oauth/revoke"
	pathUsers       = "/users"
	pathUserInfo    = "/users/info"
	pathVersion     = "/version"
	segmentRemix    = "remix"
	segmentUncap    = "uncap"
)

// GrantTypePassword is the OAuth grant used for email/password login
const GrantTypePassword = "password"

// Log messages
const (
	LogMsgBackendRequest     = "Backend request"
	LogMsgBackendFailed      = "Backend request failed"
	LogMsgBackendErrorStatus = "Backend returned error status"
)

// Envelope keys used by backend responses
const (
	envelopeKeyParty  = "party"
	EnvelopeKeyUser   = "user"
	EnvelopeKeyWeapon = "weapon"
)
