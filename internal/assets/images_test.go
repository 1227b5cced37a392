package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
	"github.com/osse101/GranblueTeam_Go/internal/grid"
)

var _ grid.ImageResolver = (*Images)(nil)

func TestCharacterArt(t *testing.T) {
	images := NewImages("https://cdn.example.com/")

	tests := []struct {
		name          string
		uncap         int
		transcendence int
		expected      string
	}{
		{"base", 1, 0, "https://cdn.example.com/character-main/3040001000_01.jpg"},
		{"three star", 3, 0, "https://cdn.example.com/character-main/3040001000_02.jpg"},
		{"ulb", 5, 0, "https://cdn.example.com/character-main/3040001000_03.jpg"},
		{"transcended", 6, 2, "https://cdn.example.com/character-main/3040001000_04.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, images.CharacterArt("3040001000", tt.uncap, tt.transcendence))
		})
	}
}

func TestWeaponImage(t *testing.T) {
	images := NewImages("https://cdn.example.com")
	fixed := domain.GridWeapon{Object: domain.Weapon{GranblueID: "1040001000", Element: domain.ElementFire}}
	changeable := domain.GridWeapon{Element: domain.ElementDark, Object: domain.Weapon{GranblueID: "1040002000"}}

	assert.Equal(t, "https://cdn.example.com/weapon-grid/1040001000.jpg", images.WeaponImage(fixed, false))
	assert.Equal(t, "https://cdn.example.com/weapon-main/1040001000.jpg", images.WeaponImage(fixed, true))
	assert.Equal(t, "https://cdn.example.com/weapon-grid/1040002000_5.jpg", images.WeaponImage(changeable, false))
}

func TestSummonImage(t *testing.T) {
	images := NewImages("https://cdn.example.com")
	base := domain.GridSummon{UncapLevel: 5, Object: domain.Summon{GranblueID: "2040001000"}}
	ulb := domain.GridSummon{UncapLevel: 5, Object: domain.Summon{GranblueID: "2040001000", Uncap: domain.Uncap{ULB: true}}}
	transcended := domain.GridSummon{UncapLevel: 6, TranscendenceStep: 1, Object: domain.Summon{GranblueID: "2040001000"}}

	assert.Equal(t, "https://cdn.example.com/summon-grid/2040001000.jpg", images.SummonImage(base, false))
	assert.Equal(t, "https://cdn.example.com/summon-main/2040001000_02.jpg", images.SummonImage(ulb, true))
	assert.Equal(t, "https://cdn.example.com/summon-grid/2040001000_03.jpg", images.SummonImage(transcended, false))
}

func TestImages_EmptyBaseIsRelative(t *testing.T) {
	images := NewImages("")

	assert.Equal(t, "/job-icons/100001.png", images.JobIcon(domain.Job{GranblueID: "100001"}))
	assert.Equal(t, "/raids/lucilius.png", images.RaidIcon(domain.Raid{Slug: "lucilius"}))
	assert.Equal(t, "/job-skills/rage-iv.png", images.JobSkillIcon(domain.JobSkill{Slug: "rage-iv"}))
}
