package domain

var elementLabels = map[int]LocalizedName{
	ElementNull:  {En: "Null", Ja: "無"},
	ElementWind:  {En: "Wind", Ja: "風"},
	ElementFire:  {En: "Fire", Ja: "火"},
	ElementWater: {En: "Water", Ja: "水"},
	ElementEarth: {En: "Earth", Ja: "土"},
	ElementDark:  {En: "Dark", Ja: "闇"},
	ElementLight: {En: "Light", Ja: "光"},
}

var proficiencyLabels = map[int]LocalizedName{
	ProficiencySabre:  {En: "Sabre", Ja: "剣"},
	ProficiencyDagger: {En: "Dagger", Ja: "短剣"},
	ProficiencyAxe:    {En: "Axe", Ja: "斧"},
	ProficiencySpear:  {En: "Spear", Ja: "槍"},
	ProficiencyBow:    {En: "Bow", Ja: "弓"},
	ProficiencyStaff:  {En: "Staff", Ja: "杖"},
	ProficiencyMelee:  {En: "Melee", Ja: "格闘"},
	ProficiencyHarp:   {En: "Harp", Ja: "琴"},
	ProficiencyGun:    {En: "Gun", Ja: "銃"},
	ProficiencyKatana: {En: "Katana", Ja: "刀"},
}

var rarityLabels = map[int]LocalizedName{
	RarityR:   {En: "R", Ja: "R"},
	RaritySR:  {En: "SR", Ja: "SR"},
	RaritySSR: {En: "SSR", Ja: "SSR"},
}

// ElementLabel returns the label for an element id
func ElementLabel(id int) (LocalizedName, bool) {
	label, ok := elementLabels[id]
	return label, ok
}

// ProficiencyLabel returns the label for a proficiency id
func ProficiencyLabel(id int) (LocalizedName, bool) {
	label, ok := proficiencyLabels[id]
	return label, ok
}

// RarityLabel returns the label for a rarity id
func RarityLabel(id int) (LocalizedName, bool) {
	label, ok := rarityLabels[id]
	return label, ok
}

// IsValidElement reports whether id is a known element
func IsValidElement(id int) bool {
	_, ok := elementLabels[id]
	return ok
}

// IsValidProficiency reports whether id is a known proficiency
func IsValidProficiency(id int) bool {
	_, ok := proficiencyLabels[id]
	return ok
}

// IsValidCategory reports whether category names a grid item kind
func IsValidCategory(category string) bool {
	switch category {
	case CategoryWeapon, CategorySummon, CategoryCharacter:
		return true
	default:
		return false
	}
}
