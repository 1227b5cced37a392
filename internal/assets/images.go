package assets

import (
	"fmt"
	"strings"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
)

// Images builds CDN URLs for catalog art.
// An empty base URL yields root-relative paths.
type Images struct {
	base string
}

// NewImages creates an image URL builder rooted at baseURL
func NewImages(baseURL string) *Images {
	return &Images{base: strings.TrimRight(baseURL, "/")}
}

func (i *Images) url(dir, file string) string {
	return i.base + "/" + dir + "/" + file
}

// CharacterImage returns the portrait variant matching the character's progression
func (i *Images) CharacterImage(c domain.GridCharacter) string {
	return i.CharacterArt(c.Object.GranblueID, c.UncapLevel, c.TranscendenceStep)
}

// CharacterArt returns the character-main art for a granblue id at a given uncap level
func (i *Images) CharacterArt(granblueID string, uncapLevel, transcendenceStep int) string {
	suffix := characterSuffixBase
	switch {
	case transcendenceStep > 0:
		suffix = characterSuffixTranscended
	case uncapLevel >= 5:
		suffix = characterSuffixULB
	case uncapLevel > 2:
		suffix = characterSuffixFLB
	}
	return i.url(dirCharacterMain, fmt.Sprintf("%s_%s%s", granblueID, suffix, extJPG))
}

// WeaponImage returns the grid or mainhand art for a weapon.
// Element-changeable weapons carry the chosen element in the file name.
func (i *Images) WeaponImage(w domain.GridWeapon, main bool) string {
	dir := dirWeaponGrid
	if main {
		dir = dirWeaponMain
	}
	name := w.Object.GranblueID
	if w.Object.ElementChangeable() && w.Element > domain.ElementNull {
		name = fmt.Sprintf("%s_%d", name, w.Element)
	}
	return i.url(dir, name+extJPG)
}

// SummonImage returns the grid or main art for a summon
func (i *Images) SummonImage(s domain.GridSummon, main bool) string {
	dir := dirSummonGrid
	if main {
		dir = dirSummonMain
	}
	name := s.Object.GranblueID
	switch {
	case s.TranscendenceStep > 0:
		name += summonSuffixTranscended
	case s.UncapLevel >= 5 && s.Object.Uncap.ULB:
		name += summonSuffixULB
	}
	return i.url(dir, name+extJPG)
}

// JobIcon returns the icon for a job
func (i *Images) JobIcon(j domain.Job) string {
	return i.url(dirJobIcons, j.GranblueID+extPNG)
}

// JobSkillIcon returns the icon for a job skill by slug
func (i *Images) JobSkillIcon(s domain.JobSkill) string {
	return i.url(dirJobSkills, s.Slug+extPNG)
}

// RaidIcon returns the thumbnail for a raid by slug
func (i *Images) RaidIcon(r domain.Raid) string {
	return i.url(dirRaids, r.Slug+extPNG)
}
