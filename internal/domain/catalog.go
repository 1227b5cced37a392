package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LocalizedName carries the bilingual names the backend returns for every catalog object
type LocalizedName struct {
	En string `json:"en"`
	Ja string `json:"ja"`
}

// For returns the name for a locale, falling back to English
func (n LocalizedName) For(locale string) string {
	if locale == LocaleJapanese && n.Ja != "" {
		return n.Ja
	}
	return n.En
}

// Uncap describes which uncap tiers a catalog object supports
type Uncap struct {
	FLB           bool `json:"flb"`
	ULB           bool `json:"ulb"`
	Transcendence bool `json:"transcendence"`
}

// MaxLevel returns the highest uncap level the object can reach
func (u Uncap) MaxLevel() int {
	switch {
	case u.Transcendence:
		return MaxUncapLevel
	case u.ULB:
		return 5
	case u.FLB:
		return 4
	default:
		return 3
	}
}

// Proficiencies is a list of proficiency ids.
// The backend sends either a bare integer or an array depending on the object type.
type Proficiencies []int

// UnmarshalJSON accepts null, a single integer, or an array of integers
func (p *Proficiencies) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = nil
		return nil
	}
	if trimmed[0] == '[' {
		var list []int
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("proficiency list: %w", err)
		}
		*p = list
		return nil
	}
	var single int
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return fmt.Errorf("proficiency: %w", err)
	}
	*p = Proficiencies{single}
	return nil
}

// Primary returns the first proficiency, or ProficiencyNone
func (p Proficiencies) Primary() int {
	if len(p) == 0 {
		return ProficiencyNone
	}
	return p[0]
}

// Character is a playable unit from the catalog
type Character struct {
	ID          string        `json:"id"`
	GranblueID  string        `json:"granblue_id"`
	Name        LocalizedName `json:"name"`
	Rarity      int           `json:"rarity"`
	Element     int           `json:"element"`
	Proficiency Proficiencies `json:"proficiency"`
	Race        []int         `json:"race,omitempty"`
	Gender      int           `json:"gender"`
	Uncap       Uncap         `json:"uncap"`
	Special     bool          `json:"special"`
	CharacterID []int         `json:"character_id,omitempty"`
	Awakenings  []Awakening   `json:"awakenings,omitempty"`
	ReleaseDate string        `json:"release_date,omitempty"`
	FlbDate     string        `json:"flb_date,omitempty"`
	UlbDate     string        `json:"ulb_date,omitempty"`
	WikiEn      string        `json:"wiki_en,omitempty"`
	WikiJa      string        `json:"wiki_ja,omitempty"`
	Nicknames   []string      `json:"nicknames,omitempty"`
	MaxLevel    int           `json:"max_level,omitempty"`
}

// Weapon is a weapon from the catalog
type Weapon struct {
	ID            string        `json:"id"`
	GranblueID    string        `json:"granblue_id"`
	Name          LocalizedName `json:"name"`
	Rarity        int           `json:"rarity"`
	Element       int           `json:"element"`
	Proficiency   Proficiencies `json:"proficiency"`
	Series        int           `json:"series"`
	Uncap         Uncap         `json:"uncap"`
	MaxLevel      int           `json:"max_level"`
	MaxSkillLevel int           `json:"max_skill_level"`
	MaxAwakening  int           `json:"max_awakening_level,omitempty"`
	Ax            bool          `json:"ax"`
	AxType        int           `json:"ax_type,omitempty"`
	Limit         bool          `json:"limit"`
	Extra         bool          `json:"extra"`
	Awakenings    []Awakening   `json:"awakenings,omitempty"`
	ReleaseDate   string        `json:"release_date,omitempty"`
	FlbDate       string        `json:"flb_date,omitempty"`
	UlbDate       string        `json:"ulb_date,omitempty"`
	WikiEn        string        `json:"wiki_en,omitempty"`
	WikiJa        string        `json:"wiki_ja,omitempty"`
	Recruits      string        `json:"recruits,omitempty"`
}

// ElementChangeable reports whether the grid instance picks its own element
func (w Weapon) ElementChangeable() bool {
	return w.Element == ElementNull
}

// Summon is a summon from the catalog
type Summon struct {
	ID          string        `json:"id"`
	GranblueID  string        `json:"granblue_id"`
	Name        LocalizedName `json:"name"`
	Rarity      int           `json:"rarity"`
	Element     int           `json:"element"`
	Series      int           `json:"series,omitempty"`
	Uncap       Uncap         `json:"uncap"`
	Subaura     bool          `json:"subaura"`
	Limit       bool          `json:"limit"`
	MaxLevel    int           `json:"max_level"`
	ReleaseDate string        `json:"release_date,omitempty"`
	WikiEn      string        `json:"wiki_en,omitempty"`
	WikiJa      string        `json:"wiki_ja,omitempty"`
}

// Job is a main character class
type Job struct {
	ID              string        `json:"id"`
	GranblueID      string        `json:"granblue_id"`
	Name            LocalizedName `json:"name"`
	Row             string        `json:"row"`
	Proficiency     Proficiencies `json:"proficiency"`
	MasterLevel     bool          `json:"master_level"`
	UltimateMastery bool          `json:"ultimate_mastery"`
	Accessory       bool          `json:"accessory"`
	AccessoryType   int           `json:"accessory_type,omitempty"`
	Order           int           `json:"order"`
}

// JobSkill is a skill equippable in a job skill slot
type JobSkill struct {
	ID    string        `json:"id"`
	Job   *Job          `json:"job,omitempty"`
	Name  LocalizedName `json:"name"`
	Slug  string        `json:"slug"`
	Color int           `json:"color"`
	Main  bool          `json:"main"`
	Base  bool          `json:"base"`
	Sub   bool          `json:"sub"`
	Emp   bool          `json:"emp"`
	Order int           `json:"order"`
}

// JobAccessory is a shield or manatura
type JobAccessory struct {
	ID            string        `json:"id"`
	GranblueID    string        `json:"granblue_id"`
	Name          LocalizedName `json:"name"`
	Job           *Job          `json:"job,omitempty"`
	Rarity        int           `json:"rarity"`
	AccessoryType int           `json:"accessory_type"`
}

// RaidGroup groups raids by difficulty section
type RaidGroup struct {
	ID         string        `json:"id"`
	Name       LocalizedName `json:"name"`
	Section    int           `json:"section"`
	Order      int           `json:"order"`
	Difficulty int           `json:"difficulty"`
	Extra      bool          `json:"extra"`
	Guidebooks bool          `json:"guidebooks"`
	HL         bool          `json:"hl"`
	Raids      []Raid        `json:"raids,omitempty"`
}

// Raid is a battle a party is built for
type Raid struct {
	ID      string        `json:"id"`
	Name    LocalizedName `json:"name"`
	Slug    string        `json:"slug"`
	Level   int           `json:"level"`
	Element int           `json:"element"`
	Group   *RaidGroup    `json:"group,omitempty"`
}

// Guidebook is an equippable party-wide bonus
type Guidebook struct {
	ID          string        `json:"id"`
	GranblueID  string        `json:"granblue_id"`
	Name        LocalizedName `json:"name"`
	Description LocalizedName `json:"description"`
}

// WeaponKey is a pendulum, teluma, gauph key or emblem
type WeaponKey struct {
	ID         string        `json:"id"`
	GranblueID string        `json:"granblue_id,omitempty"`
	Name       LocalizedName `json:"name"`
	Series     []int         `json:"series"`
	Slot       int           `json:"slot"`
	Group      int           `json:"group"`
	Order      int           `json:"order"`
	Slug       string        `json:"slug,omitempty"`
}

// Awakening is an awakening type available to a character or weapon
type Awakening struct {
	ID         string        `json:"id"`
	Name       LocalizedName `json:"name"`
	Slug       string        `json:"slug"`
	ObjectType string        `json:"object_type"`
	Order      int           `json:"order"`
}
