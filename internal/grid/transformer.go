package grid

import (
	"sort"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
)

// Grid is the view model of a party's equipment.
// Main and friend items are explicit optional references; nil means the slot is not yet filled.
type Grid struct {
	MainWeapon     *domain.GridWeapon                  `json:"mainWeapon,omitempty"`
	AllWeapons     domain.GridArray[domain.GridWeapon] `json:"allWeapons"`
	MainSummon     *domain.GridSummon                  `json:"mainSummon,omitempty"`
	FriendSummon   *domain.GridSummon                  `json:"friendSummon,omitempty"`
	AllSummons     domain.GridArray[domain.GridSummon] `json:"allSummons"`
	SubAuraSummons domain.GridArray[domain.GridSummon] `json:"subAuraSummons"`
	Characters     []domain.GridCharacter              `json:"characters"`
	Images         map[string]string                   `json:"images,omitempty"`
}

// Conflict describes backend data that breaks a grid invariant
type Conflict struct {
	Kind     string `json:"kind"`
	Category string `json:"category"`
	ItemID   string `json:"item_id"`
	Position int    `json:"position"`
}

// Transform partitions a party's flat grid arrays into the Grid view model.
// The first flagged item wins each main/friend role and is left out of the all* maps.
// On duplicate positions the first item at that position is kept.
func Transform(party domain.Party) Grid {
	g := Grid{
		AllWeapons:     domain.NewGridArray[domain.GridWeapon](),
		AllSummons:     domain.NewGridArray[domain.GridSummon](),
		SubAuraSummons: domain.NewGridArray[domain.GridSummon](),
		Characters:     make([]domain.GridCharacter, 0, len(party.Characters)),
	}

	for i := range party.Weapons {
		w := party.Weapons[i]
		if w.Mainhand && g.MainWeapon == nil {
			g.MainWeapon = &w
			continue
		}
		if !g.AllWeapons.Filled(w.Position) {
			g.AllWeapons[w.Position] = w
		}
	}

	for i := range party.Summons {
		s := party.Summons[i]
		switch {
		case s.Main && g.MainSummon == nil:
			g.MainSummon = &s
		case s.Friend && g.FriendSummon == nil:
			g.FriendSummon = &s
		case s.Position >= domain.SummonSlots:
			slot := s.Position - domain.SummonSlots
			if !g.SubAuraSummons.Filled(slot) {
				g.SubAuraSummons[slot] = s
			}
		default:
			if !g.AllSummons.Filled(s.Position) {
				g.AllSummons[s.Position] = s
			}
		}
	}

	g.Characters = append(g.Characters, party.Characters...)
	sort.SliceStable(g.Characters, func(i, j int) bool {
		return g.Characters[i].Position < g.Characters[j].Position
	})

	return g
}

// Conflicts reports flag exclusivity and position violations without altering anything.
// Transform still resolves these by first match; callers log the result.
func Conflicts(party domain.Party) []Conflict {
	var conflicts []Conflict

	mainhands := 0
	weaponPositions := make(map[int]bool, len(party.Weapons))
	for _, w := range party.Weapons {
		if w.Mainhand {
			mainhands++
			if mainhands > 1 {
				conflicts = append(conflicts, Conflict{Kind: ConflictMultipleMain, Category: domain.CategoryWeapon, ItemID: w.ID, Position: w.Position})
			}
			continue
		}
		if weaponPositions[w.Position] {
			conflicts = append(conflicts, Conflict{Kind: ConflictDuplicatePosition, Category: domain.CategoryWeapon, ItemID: w.ID, Position: w.Position})
		}
		weaponPositions[w.Position] = true
		if w.Position < 0 || w.Position >= domain.WeaponSlots+domain.ExtraWeaponSlots {
			conflicts = append(conflicts, Conflict{Kind: ConflictOutOfRange, Category: domain.CategoryWeapon, ItemID: w.ID, Position: w.Position})
		}
	}

	mains, friends := 0, 0
	summonPositions := make(map[int]bool, len(party.Summons))
	for _, s := range party.Summons {
		if s.Main {
			mains++
			if mains > 1 {
				conflicts = append(conflicts, Conflict{Kind: ConflictMultipleMain, Category: domain.CategorySummon, ItemID: s.ID, Position: s.Position})
			}
			continue
		}
		if s.Friend {
			friends++
			if friends > 1 {
				conflicts = append(conflicts, Conflict{Kind: ConflictMultipleFriend, Category: domain.CategorySummon, ItemID: s.ID, Position: s.Position})
			}
			continue
		}
		if summonPositions[s.Position] {
			conflicts = append(conflicts, Conflict{Kind: ConflictDuplicatePosition, Category: domain.CategorySummon, ItemID: s.ID, Position: s.Position})
		}
		summonPositions[s.Position] = true
		if s.Position < 0 || s.Position >= domain.SummonSlots+domain.ExtraSummonSlots {
			conflicts = append(conflicts, Conflict{Kind: ConflictOutOfRange, Category: domain.CategorySummon, ItemID: s.ID, Position: s.Position})
		}
	}

	characterPositions := make(map[int]bool, len(party.Characters))
	for _, c := range party.Characters {
		if characterPositions[c.Position] {
			conflicts = append(conflicts, Conflict{Kind: ConflictDuplicatePosition, Category: domain.CategoryCharacter, ItemID: c.ID, Position: c.Position})
		}
		characterPositions[c.Position] = true
		if c.Position < 0 || c.Position >= domain.CharacterSlots {
			conflicts = append(conflicts, Conflict{Kind: ConflictOutOfRange, Category: domain.CategoryCharacter, ItemID: c.ID, Position: c.Position})
		}
	}

	return conflicts
}

// ImageResolver builds image URLs for grid items
type ImageResolver interface {
	WeaponImage(w domain.GridWeapon, main bool) string
	SummonImage(s domain.GridSummon, main bool) string
	CharacterImage(c domain.GridCharacter) string
}

// Decorate fills g.Images with one URL per grid item, keyed by grid item id
func Decorate(g Grid, images ImageResolver) Grid {
	urls := make(map[string]string)

	if g.MainWeapon != nil {
		urls[g.MainWeapon.ID] = images.WeaponImage(*g.MainWeapon, true)
	}
	for _, w := range g.AllWeapons {
		urls[w.ID] = images.WeaponImage(w, false)
	}

	if g.MainSummon != nil {
		urls[g.MainSummon.ID] = images.SummonImage(*g.MainSummon, true)
	}
	if g.FriendSummon != nil {
		urls[g.FriendSummon.ID] = images.SummonImage(*g.FriendSummon, true)
	}
	for _, s := range g.AllSummons {
		urls[s.ID] = images.SummonImage(s, false)
	}
	for _, s := range g.SubAuraSummons {
		urls[s.ID] = images.SummonImage(s, false)
	}

	for _, c := range g.Characters {
		urls[c.ID] = images.CharacterImage(c)
	}

	g.Images = urls
	return g
}
