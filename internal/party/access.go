package party

import "github.com/osse101/GranblueTeam_Go/internal/domain"

// Viewer identifies who is looking at a party.
// UserID is empty for anonymous sessions; LocalID is the device token from the local_id cookie.
type Viewer struct {
	UserID  string
	LocalID string
	// HasEditKey is set when an edit key for this party is stored for the viewer's device
	HasEditKey bool
}

// CanEdit reports whether the viewer may edit the party.
// The result only gates UI controls; the backend re-checks every mutation.
func CanEdit(p domain.Party, v Viewer) bool {
	if owner := p.OwnerID(); owner != "" {
		return v.UserID != "" && v.UserID == owner
	}
	if v.HasEditKey {
		return true
	}
	return p.LocalID != "" && p.LocalID == v.LocalID
}
