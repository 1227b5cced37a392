package search

// Backend search keys
const (
	KeyQuery        = "query"
	KeyLocale       = "locale"
	KeyJob          = "job"
	KeyPage         = "page"
	KeyPer          = "per"
	KeyElement      = "element"
	KeyRarity       = "rarity"
	KeySeries       = "series"
	KeyProficiency  = "proficiency"
	KeyProficiency1 = "proficiency1"
	KeyProficiency2 = "proficiency2"
	KeyRace         = "race"
	KeySeason       = "season"
	KeyRecency      = "recency"
	KeyExtra        = "extra"
	KeySubaura      = "subaura"
)

// Searchable objects, matching the backend's /search/{object} routes
const (
	ObjectCharacters = "characters"
	ObjectWeapons    = "weapons"
	ObjectSummons    = "summons"
	ObjectJobSkills  = "job_skills"
	ObjectGuidebooks = "guidebooks"
)
