package party

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/osse101/GranblueTeam_Go/internal/backend"
	"github.com/osse101/GranblueTeam_Go/internal/domain"
	"github.com/osse101/GranblueTeam_Go/internal/editkey"
	"github.com/osse101/GranblueTeam_Go/internal/grid"
	"github.com/osse101/GranblueTeam_Go/internal/logger"
	"github.com/osse101/GranblueTeam_Go/internal/metrics"
)

// Backend is the subset of the backend client used for parties and their grids
type Backend interface {
	GetParty(ctx context.Context, creds backend.Credentials, shortcode, locale string) (*backend.Response, error)
	ListParties(ctx context.Context, creds backend.Credentials, query url.Values, locale string) (*backend.Response, error)
	CreateParty(ctx context.Context, creds backend.Credentials, body []byte) (*backend.Response, error)
	UpdateParty(ctx context.Context, creds backend.Credentials, partyID string, body []byte) (*backend.Response, error)
	DeleteParty(ctx context.Context, creds backend.Credentials, partyID string) (*backend.Response, error)
	RemixParty(ctx context.Context, creds backend.Credentials, shortcode string, body []byte) (*backend.Response, error)
	Favorite(ctx context.Context, creds backend.Credentials, partyID string) (*backend.Response, error)
	Unfavorite(ctx context.Context, creds backend.Credentials, partyID string) (*backend.Response, error)
	CreateGridItem(ctx context.Context, creds backend.Credentials, category string, body []byte) (*backend.Response, error)
	UpdateGridItem(ctx context.Context, creds backend.Credentials, category, gridID string, body []byte) (*backend.Response, error)
	DeleteGridItem(ctx context.Context, creds backend.Credentials, category, gridID string) (*backend.Response, error)
	UpdateUncap(ctx context.Context, creds backend.Credentials, category, gridID string, body []byte) (*backend.Response, error)
}

// Actor is the session a party operation runs on behalf of
type Actor struct {
	UserID  string
	Token   string
	LocalID string
	Locale  string
}

// View is a party with its grid view model and the viewer's edit permission
type View struct {
	Party     domain.Party    `json:"party"`
	Grid      grid.Grid       `json:"grid"`
	CanEdit   bool            `json:"canEdit"`
	Conflicts []grid.Conflict `json:"conflicts,omitempty"`
}

// Service proxies party operations, keeping anonymous edit keys server-side.
// Mutations return the backend response with any edit key removed from its body.
type Service interface {
	Get(ctx context.Context, actor Actor, shortcode string) (*View, error)
	List(ctx context.Context, actor Actor, query url.Values) ([]byte, error)
	Create(ctx context.Context, actor Actor, body []byte) (*backend.Response, error)
	Update(ctx context.Context, actor Actor, partyID string, body []byte) (*backend.Response, error)
	Delete(ctx context.Context, actor Actor, partyID string) (*backend.Response, error)
	Remix(ctx context.Context, actor Actor, shortcode string, body []byte) (*backend.Response, error)
	Favorite(ctx context.Context, actor Actor, partyID string) (*backend.Response, error)
	Unfavorite(ctx context.Context, actor Actor, partyID string) (*backend.Response, error)
	CreateGridItem(ctx context.Context, actor Actor, partyID, category string, body []byte) (*backend.Response, error)
	UpdateGridItem(ctx context.Context, actor Actor, partyID, category, gridID string, body []byte) (*backend.Response, error)
	DeleteGridItem(ctx context.Context, actor Actor, partyID, category, gridID string) (*backend.Response, error)
	UpdateUncap(ctx context.Context, actor Actor, partyID, category, gridID string, body []byte) (*backend.Response, error)
}

type service struct {
	backend Backend
	keys    editkey.Store
	images  grid.ImageResolver
}

// NewService creates a party service
func NewService(b Backend, keys editkey.Store, images grid.ImageResolver) Service {
	return &service{backend: b, keys: keys, images: images}
}

func (s *service) Get(ctx context.Context, actor Actor, shortcode string) (*View, error) {
	if shortcode == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingParam, ErrMsgMissingShortcode)
	}

	resp, err := s.backend.GetParty(ctx, backend.Credentials{Token: actor.Token}, shortcode, actor.Locale)
	if err != nil {
		return nil, err
	}
	p, err := backend.DecodeParty(resp.Body)
	if err != nil {
		return nil, err
	}
	// never forward a key the backend might echo
	p.EditKey = ""

	conflicts := grid.Conflicts(p)
	if len(conflicts) > 0 {
		log := logger.FromContext(ctx)
		for _, c := range conflicts {
			metrics.GridConflicts.WithLabelValues(c.Kind).Inc()
			log.Warn(LogMsgGridConflict,
				"shortcode", shortcode,
				"kind", c.Kind,
				"category", c.Category,
				"item_id", c.ItemID,
				"position", c.Position)
		}
	}

	g := grid.Transform(p)
	if s.images != nil {
		g = grid.Decorate(g, s.images)
	}

	viewer := Viewer{UserID: actor.UserID, LocalID: actor.LocalID}
	if p.OwnerID() == "" {
		viewer.HasEditKey = s.editKey(ctx, actor, p.ID) != ""
	}

	return &View{
		Party:     p,
		Grid:      g,
		CanEdit:   CanEdit(p, viewer),
		Conflicts: conflicts,
	}, nil
}

func (s *service) List(ctx context.Context, actor Actor, query url.Values) ([]byte, error) {
	resp, err := s.backend.ListParties(ctx, backend.Credentials{Token: actor.Token}, query, actor.Locale)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (s *service) Create(ctx context.Context, actor Actor, body []byte) (*backend.Response, error) {
	body, err := s.anonymousBody(actor, body)
	if err != nil {
		return nil, err
	}

	resp, err := s.backend.CreateParty(ctx, backend.Credentials{Token: actor.Token}, body)
	if err != nil {
		return nil, err
	}

	issued, err := s.keepEditKey(ctx, actor, resp)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgPartyCreated, "party_id", issued.PartyID, "anonymous", actor.Token == "")
	return resp, nil
}

func (s *service) Update(ctx context.Context, actor Actor, partyID string, body []byte) (*backend.Response, error) {
	if partyID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingParam, ErrMsgMissingPartyID)
	}
	resp, err := s.backend.UpdateParty(ctx, s.credentials(ctx, actor, partyID), partyID, body)
	if err != nil {
		return nil, err
	}
	if resp.Body, _, err = takeEditKey(resp.Body); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, actor Actor, partyID string) (*backend.Response, error) {
	if partyID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingParam, ErrMsgMissingPartyID)
	}
	resp, err := s.backend.DeleteParty(ctx, s.credentials(ctx, actor, partyID), partyID)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgPartyDeleted, "party_id", partyID)
	if actor.LocalID != "" {
		if err := s.keys.Delete(ctx, actor.LocalID, partyID); err != nil {
			log.Warn(LogMsgEditKeyCleanFail, "party_id", partyID, "error", err)
		}
	}
	return resp, nil
}

func (s *service) Remix(ctx context.Context, actor Actor, shortcode string, body []byte) (*backend.Response, error) {
	if shortcode == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingParam, ErrMsgMissingShortcode)
	}
	if len(body) == 0 {
		body = []byte(`{"party":{}}`)
	}
	body, err := s.anonymousBody(actor, body)
	if err != nil {
		return nil, err
	}

	resp, err := s.backend.RemixParty(ctx, backend.Credentials{Token: actor.Token}, shortcode, body)
	if err != nil {
		return nil, err
	}

	issued, err := s.keepEditKey(ctx, actor, resp)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgPartyRemixed, "source", shortcode, "party_id", issued.PartyID)
	return resp, nil
}

func (s *service) Favorite(ctx context.Context, actor Actor, partyID string) (*backend.Response, error) {
	if partyID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingParam, ErrMsgMissingPartyID)
	}
	return s.backend.Favorite(ctx, backend.Credentials{Token: actor.Token}, partyID)
}

func (s *service) Unfavorite(ctx context.Context, actor Actor, partyID string) (*backend.Response, error) {
	if partyID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingParam, ErrMsgMissingPartyID)
	}
	return s.backend.Unfavorite(ctx, backend.Credentials{Token: actor.Token}, partyID)
}

func (s *service) CreateGridItem(ctx context.Context, actor Actor, partyID, category string, body []byte) (*backend.Response, error) {
	if err := checkGridTarget(partyID, category); err != nil {
		return nil, err
	}
	return s.backend.CreateGridItem(ctx, s.credentials(ctx, actor, partyID), category, body)
}

func (s *service) UpdateGridItem(ctx context.Context, actor Actor, partyID, category, gridID string, body []byte) (*backend.Response, error) {
	if err := checkGridItem(partyID, category, gridID); err != nil {
		return nil, err
	}
	return s.backend.UpdateGridItem(ctx, s.credentials(ctx, actor, partyID), category, gridID, body)
}

func (s *service) DeleteGridItem(ctx context.Context, actor Actor, partyID, category, gridID string) (*backend.Response, error) {
	if err := checkGridItem(partyID, category, gridID); err != nil {
		return nil, err
	}
	return s.backend.DeleteGridItem(ctx, s.credentials(ctx, actor, partyID), category, gridID)
}

func (s *service) UpdateUncap(ctx context.Context, actor Actor, partyID, category, gridID string, body []byte) (*backend.Response, error) {
	if err := checkGridItem(partyID, category, gridID); err != nil {
		return nil, err
	}
	return s.backend.UpdateUncap(ctx, s.credentials(ctx, actor, partyID), category, gridID, body)
}

func checkGridTarget(partyID, category string) error {
	if partyID == "" {
		return fmt.Errorf("%w: %s", domain.ErrMissingParam, ErrMsgMissingPartyID)
	}
	if !domain.IsValidCategory(category) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownCategory, category)
	}
	return nil
}

func checkGridItem(partyID, category, gridID string) error {
	if err := checkGridTarget(partyID, category); err != nil {
		return err
	}
	if gridID == "" {
		return fmt.Errorf("%w: %s", domain.ErrMissingParam, ErrMsgMissingGridID)
	}
	return nil
}

// credentials attaches the bearer token and, for anonymous parties, the stored edit key
func (s *service) credentials(ctx context.Context, actor Actor, partyID string) backend.Credentials {
	return backend.Credentials{
		Token:   actor.Token,
		EditKey: s.editKey(ctx, actor, partyID),
	}
}

func (s *service) editKey(ctx context.Context, actor Actor, partyID string) string {
	if actor.LocalID == "" || partyID == "" {
		return ""
	}
	key, err := s.keys.Get(ctx, actor.LocalID, partyID)
	if err != nil {
		if !errors.Is(err, domain.ErrEditKeyNotPresent) {
			logger.FromContext(ctx).Warn(LogMsgEditKeyLookupFail, "party_id", partyID, "error", err)
		}
		return ""
	}
	return key
}

// anonymousBody tags a party body with the device token when no account is signed in
func (s *service) anonymousBody(actor Actor, body []byte) ([]byte, error) {
	if actor.Token != "" {
		return body, nil
	}
	return withLocalID(body, actor.LocalID)
}

// keepEditKey strips an issued edit key from the response body and stores it for the device
func (s *service) keepEditKey(ctx context.Context, actor Actor, resp *backend.Response) (issuedKey, error) {
	cleaned, issued, err := takeEditKey(resp.Body)
	if err != nil {
		return issuedKey{}, err
	}
	resp.Body = cleaned
	if issued.EditKey != "" && issued.PartyID != "" && actor.LocalID != "" {
		if err := s.keys.Put(ctx, actor.LocalID, issued.PartyID, issued.EditKey); err != nil {
			logger.FromContext(ctx).Error(LogMsgEditKeySaveFail, "party_id", issued.PartyID, "error", err)
		}
	}
	return issued, nil
}
