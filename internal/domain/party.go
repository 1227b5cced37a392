package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Party is a user's saved loadout, as returned by the backend.
// The backend is authoritative; this is a transient copy.
type Party struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Shortcode   string          `json:"shortcode"`
	Extra       bool            `json:"extra"`
	Favorited   bool            `json:"favorited"`
	Remix       bool            `json:"remix"`
	Visibility  int             `json:"visibility,omitempty"`
	Element     int             `json:"element,omitempty"`
	LocalID     string          `json:"local_id,omitempty"`
	EditKey     string          `json:"edit_key,omitempty"`
	Raid        *Raid           `json:"raid,omitempty"`
	Job         *Job            `json:"job,omitempty"`
	JobSkills   JobSkillSet     `json:"job_skills"`
	Accessory   *JobAccessory   `json:"accessory,omitempty"`
	Guidebooks  GuidebookSet    `json:"guidebooks,omitempty"`
	Characters  []GridCharacter `json:"characters"`
	Weapons     []GridWeapon    `json:"weapons"`
	Summons     []GridSummon    `json:"summons"`
	User        *User           `json:"user,omitempty"`
	SourceParty *PartyRef       `json:"source_party,omitempty"`
	Remixes     []PartyRef      `json:"remixes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OwnerID returns the owning user's id, or "" for anonymous parties
func (p Party) OwnerID() string {
	if p.User == nil {
		return ""
	}
	return p.User.ID
}

// PartyRef is the abbreviated party the backend embeds for remix lineage
type PartyRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Shortcode string `json:"shortcode"`
	User      *User  `json:"user,omitempty"`
}

// User is a public account profile
type User struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Avatar     *Avatar `json:"avatar,omitempty"`
	Gender     int     `json:"gender,omitempty"`
	Language   string  `json:"language,omitempty"`
	Theme      string  `json:"theme,omitempty"`
	GranblueID string  `json:"granblue_id,omitempty"`
	Private    bool    `json:"private,omitempty"`
	Role       int     `json:"role,omitempty"`
}

// Avatar is the picture and element a user shows next to their name
type Avatar struct {
	Picture string `json:"picture"`
	Element string `json:"element"`
}

// AwakeningState is the awakening chosen for a grid item and its level
type AwakeningState struct {
	Type  Awakening `json:"type"`
	Level int       `json:"level"`
}

// SkillModifier is an ax skill or mastery bonus: a modifier id and its strength
type SkillModifier struct {
	Modifier int     `json:"modifier"`
	Strength float64 `json:"strength"`
}

// GridWeapon places a catalog weapon in a party slot
type GridWeapon struct {
	ID                string          `json:"id"`
	Position          int             `json:"position"`
	Mainhand          bool            `json:"mainhand"`
	UncapLevel        int             `json:"uncap_level"`
	TranscendenceStep int             `json:"transcendence_step"`
	Element           int             `json:"element,omitempty"`
	WeaponKeys        []WeaponKey     `json:"weapon_keys,omitempty"`
	Ax                []SkillModifier `json:"ax,omitempty"`
	Awakening         *AwakeningState `json:"awakening,omitempty"`
	Object            Weapon          `json:"object"`
}

// GridSummon places a catalog summon in a party slot
type GridSummon struct {
	ID                string `json:"id"`
	Position          int    `json:"position"`
	Main              bool   `json:"main"`
	Friend            bool   `json:"friend"`
	QuickSummon       bool   `json:"quick_summon"`
	UncapLevel        int    `json:"uncap_level"`
	TranscendenceStep int    `json:"transcendence_step"`
	Object            Summon `json:"object"`
}

// GridCharacter places a catalog character in a party slot
type GridCharacter struct {
	ID                string          `json:"id"`
	Position          int             `json:"position"`
	UncapLevel        int             `json:"uncap_level"`
	TranscendenceStep int             `json:"transcendence_step"`
	Perpetuity        bool            `json:"perpetuity"`
	OverMastery       []SkillModifier `json:"over_mastery,omitempty"`
	AetherialMastery  *SkillModifier  `json:"aetherial_mastery,omitempty"`
	Awakening         *AwakeningState `json:"awakening,omitempty"`
	Object            Character       `json:"object"`
}

// JobSkillSet holds the four job skill slots.
// On the wire it is an object keyed "0".."3"; absent or null keys are empty slots.
type JobSkillSet [JobSkillSlots]*JobSkill

// UnmarshalJSON reads the keyed object form, ignoring keys outside 0..3
func (s *JobSkillSet) UnmarshalJSON(data []byte) error {
	*s = JobSkillSet{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var keyed map[string]*JobSkill
	if err := json.Unmarshal(trimmed, &keyed); err != nil {
		return fmt.Errorf("job skills: %w", err)
	}
	for key, skill := range keyed {
		slot, err := strconv.Atoi(key)
		if err != nil || slot < 0 || slot >= JobSkillSlots {
			continue
		}
		s[slot] = skill
	}
	return nil
}

// MarshalJSON writes the keyed object form, omitting empty slots
func (s JobSkillSet) MarshalJSON() ([]byte, error) {
	keyed := make(map[string]*JobSkill, JobSkillSlots)
	for slot, skill := range s {
		if skill != nil {
			keyed[strconv.Itoa(slot)] = skill
		}
	}
	return json.Marshal(keyed)
}

// GuidebookSet holds guidebook slots keyed by slot number ("1".."3")
type GuidebookSet map[string]*Guidebook

// Slots returns the occupied slot keys in order
func (g GuidebookSet) Slots() []string {
	keys := make([]string, 0, len(g))
	for k, v := range g {
		if v != nil {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
