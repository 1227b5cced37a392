package assets

// CDN directories
const (
	dirCharacterMain = "character-main"
	dirWeaponGrid    = "weapon-grid"
	dirWeaponMain    = "weapon-main"
	dirSummonGrid    = "summon-grid"
	dirSummonMain    = "summon-main"
	dirJobIcons      = "job-icons"
	dirJobSkills     = "job-skills"
	dirRaids         = "raids"
)

// File name suffixes for art variants
const (
	characterSuffixBase        = "01"
	characterSuffixFLB         = "02"
	characterSuffixULB         = "03"
	characterSuffixTranscended = "04"

	summonSuffixULB         = "_02"
	summonSuffixTranscended = "_03"

	extJPG = ".jpg"
	extPNG = ".png"
)
