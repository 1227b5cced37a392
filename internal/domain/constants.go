package domain

// Element ids as used by the backend
const (
	ElementNull  = 0
	ElementWind  = 1
	ElementFire  = 2
	ElementWater = 3
	ElementEarth = 4
	ElementDark  = 5
	ElementLight = 6
)

// Rarity ids
const (
	RarityR   = 1
	RaritySR  = 2
	RaritySSR = 3
)

// Proficiency ids
const (
	ProficiencyNone   = 0
	ProficiencySabre  = 1
	ProficiencyDagger = 2
	ProficiencyAxe    = 3
	ProficiencySpear  = 4
	ProficiencyBow    = 5
	ProficiencyStaff  = 6
	ProficiencyMelee  = 7
	ProficiencyHarp   = 8
	ProficiencyGun    = 9
	ProficiencyKatana = 10
)

// Slot capacities per grid category.
// Extra slots are only available on parties flagged extra.
const (
	WeaponSlots       = 9
	ExtraWeaponSlots  = 3
	SummonSlots       = 4
	ExtraSummonSlots  = 2
	CharacterSlots    = 5
	JobSkillSlots     = 4
	MaxUncapLevel     = 6
	MaxTranscendence  = 5
	MaxProficiencies  = 2
	DefaultSearchPage = 1
	DefaultSearchPer  = 20
	MaxSearchPer      = 100
)

// Grid categories, used both as route segments and backend resource names
const (
	CategoryWeapon    = "weapon"
	CategorySummon    = "summon"
	CategoryCharacter = "character"
)

// User roles reported by the backend
const (
	RoleUser   = 1
	RoleEditor = 7
	RoleAdmin  = 9
)

// Locales
const (
	LocaleEnglish  = "en"
	LocaleJapanese = "ja"
)
