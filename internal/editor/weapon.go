package editor

import "github.com/osse101/GranblueTeam_Go/internal/domain"

// WeaponEditData is the flattened form model for editing a catalog weapon.
// Proficiencies past the two form slots ride along in ExtraProfs so saving keeps them.
type WeaponEditData struct {
	ID            string `json:"id"`
	GranblueID    string `json:"granblueId" validate:"required,numeric,len=10"`
	NameEn        string `json:"nameEn" validate:"required,max=128"`
	NameJa        string `json:"nameJa" validate:"max=128"`
	Rarity        int    `json:"rarity" validate:"min=1,max=3"`
	Element       int    `json:"element" validate:"min=0,max=6"`
	Proficiency1  *int   `json:"proficiency1,omitempty" validate:"omitempty,min=0,max=10"`
	Proficiency2  *int   `json:"proficiency2,omitempty" validate:"omitempty,min=0,max=10"`
	ExtraProfs    []int  `json:"extraProficiencies,omitempty" validate:"omitempty,dive,min=0,max=10"`
	Series        int    `json:"series" validate:"min=0"`
	FLB           bool   `json:"flb"`
	ULB           bool   `json:"ulb"`
	Transcendence bool   `json:"transcendence"`
	MaxLevel      int    `json:"maxLevel" validate:"min=0,max=250"`
	MaxSkillLevel int    `json:"maxSkillLevel" validate:"min=0,max=25"`
	MaxAwakening  int    `json:"maxAwakeningLevel" validate:"min=0,max=20"`
	Ax            bool   `json:"ax"`
	AxType        int    `json:"axType" validate:"min=0"`
	Limit         bool   `json:"limit"`
	Extra         bool   `json:"extra"`
	ReleaseDate   string `json:"releaseDate,omitempty"`
	FlbDate       string `json:"flbDate,omitempty"`
	UlbDate       string `json:"ulbDate,omitempty"`
	WikiEn        string `json:"wikiEn,omitempty" validate:"max=256"`
	WikiJa        string `json:"wikiJa,omitempty" validate:"max=256"`
	Recruits      string `json:"recruits,omitempty"`
}

// WeaponPayload is the backend body for PUT /weapons/{id}
type WeaponPayload struct {
	Weapon WeaponFields `json:"weapon"`
}

// WeaponFields mirrors the nested catalog shape the backend stores
type WeaponFields struct {
	GranblueID    string               `json:"granblue_id"`
	Name          domain.LocalizedName `json:"name"`
	Rarity        int                  `json:"rarity"`
	Element       int                  `json:"element"`
	Proficiency   domain.Proficiencies `json:"proficiency"`
	Series        int                  `json:"series"`
	Uncap         domain.Uncap         `json:"uncap"`
	MaxLevel      int                  `json:"max_level"`
	MaxSkillLevel int                  `json:"max_skill_level"`
	MaxAwakening  int                  `json:"max_awakening_level"`
	Ax            bool                 `json:"ax"`
	AxType        int                  `json:"ax_type"`
	Limit         bool                 `json:"limit"`
	Extra         bool                 `json:"extra"`
	ReleaseDate   string               `json:"release_date,omitempty"`
	FlbDate       string               `json:"flb_date,omitempty"`
	UlbDate       string               `json:"ulb_date,omitempty"`
	WikiEn        string               `json:"wiki_en,omitempty"`
	WikiJa        string               `json:"wiki_ja,omitempty"`
	Recruits      string               `json:"recruits,omitempty"`
}

// ToEditData flattens a weapon into its form model
func ToEditData(w domain.Weapon) WeaponEditData {
	data := WeaponEditData{
		ID:            w.ID,
		GranblueID:    w.GranblueID,
		NameEn:        w.Name.En,
		NameJa:        w.Name.Ja,
		Rarity:        w.Rarity,
		Element:       w.Element,
		Series:        w.Series,
		FLB:           w.Uncap.FLB,
		ULB:           w.Uncap.ULB,
		Transcendence: w.Uncap.Transcendence,
		MaxLevel:      w.MaxLevel,
		MaxSkillLevel: w.MaxSkillLevel,
		MaxAwakening:  w.MaxAwakening,
		Ax:            w.Ax,
		AxType:        w.AxType,
		Limit:         w.Limit,
		Extra:         w.Extra,
		ReleaseDate:   w.ReleaseDate,
		FlbDate:       w.FlbDate,
		UlbDate:       w.UlbDate,
		WikiEn:        w.WikiEn,
		WikiJa:        w.WikiJa,
		Recruits:      w.Recruits,
	}
	if len(w.Proficiency) > 0 {
		p := w.Proficiency[0]
		data.Proficiency1 = &p
	}
	if len(w.Proficiency) > 1 {
		p := w.Proficiency[1]
		data.Proficiency2 = &p
	}
	if len(w.Proficiency) > 2 {
		data.ExtraProfs = append([]int(nil), w.Proficiency[2:]...)
	}
	return data
}

// ToPayload rebuilds the nested backend shape from the form model
func ToPayload(d WeaponEditData) WeaponPayload {
	return WeaponPayload{Weapon: toFields(d)}
}

// proficiencies always yields a list. A later slot set without an earlier one
// keeps its position by filling the gap with ProficiencyNone.
func proficiencies(d WeaponEditData) domain.Proficiencies {
	slots := []*int{d.Proficiency1, d.Proficiency2}
	last := -1
	for i, p := range slots {
		if p != nil {
			last = i
		}
	}
	if len(d.ExtraProfs) > 0 {
		last = len(slots) - 1
	}

	out := make(domain.Proficiencies, 0, last+1+len(d.ExtraProfs))
	for _, p := range slots[:last+1] {
		if p == nil {
			out = append(out, domain.ProficiencyNone)
			continue
		}
		out = append(out, *p)
	}
	return append(out, d.ExtraProfs...)
}

func toFields(d WeaponEditData) WeaponFields {
	return WeaponFields{
		GranblueID:  d.GranblueID,
		Name:        domain.LocalizedName{En: d.NameEn, Ja: d.NameJa},
		Rarity:      d.Rarity,
		Element:     d.Element,
		Proficiency: proficiencies(d),
		Series:      d.Series,
		Uncap: domain.Uncap{
			FLB:           d.FLB,
			ULB:           d.ULB,
			Transcendence: d.Transcendence,
		},
		MaxLevel:      d.MaxLevel,
		MaxSkillLevel: d.MaxSkillLevel,
		MaxAwakening:  d.MaxAwakening,
		Ax:            d.Ax,
		AxType:        d.AxType,
		Limit:         d.Limit,
		Extra:         d.Extra,
		ReleaseDate:   d.ReleaseDate,
		FlbDate:       d.FlbDate,
		UlbDate:       d.UlbDate,
		WikiEn:        d.WikiEn,
		WikiJa:        d.WikiJa,
		Recruits:      d.Recruits,
	}
}
