package party

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GranblueTeam_Go/internal/backend"
	"github.com/osse101/GranblueTeam_Go/internal/domain"
	"github.com/osse101/GranblueTeam_Go/internal/editkey"
	"github.com/osse101/GranblueTeam_Go/internal/grid"
)

// MockBackend is a mock implementation of Backend
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) respond(args mock.Arguments) (*backend.Response, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Response), args.Error(1)
}

func (m *MockBackend) GetParty(ctx context.Context, creds backend.Credentials, shortcode, locale string) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, shortcode, locale))
}

func (m *MockBackend) ListParties(ctx context.Context, creds backend.Credentials, query url.Values, locale string) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, query, locale))
}

func (m *MockBackend) CreateParty(ctx context.Context, creds backend.Credentials, body []byte) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, body))
}

func (m *MockBackend) UpdateParty(ctx context.Context, creds backend.Credentials, partyID string, body []byte) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, partyID, body))
}

func (m *MockBackend) DeleteParty(ctx context.Context, creds backend.Credentials, partyID string) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, partyID))
}

func (m *MockBackend) RemixParty(ctx context.Context, creds backend.Credentials, shortcode string, body []byte) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, shortcode, body))
}

func (m *MockBackend) Favorite(ctx context.Context, creds backend.Credentials, partyID string) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, partyID))
}

func (m *MockBackend) Unfavorite(ctx context.Context, creds backend.Credentials, partyID string) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, partyID))
}

func (m *MockBackend) CreateGridItem(ctx context.Context, creds backend.Credentials, category string, body []byte) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, category, body))
}

func (m *MockBackend) UpdateGridItem(ctx context.Context, creds backend.Credentials, category, gridID string, body []byte) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, category, gridID, body))
}

func (m *MockBackend) DeleteGridItem(ctx context.Context, creds backend.Credentials, category, gridID string) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, category, gridID))
}

func (m *MockBackend) UpdateUncap(ctx context.Context, creds backend.Credentials, category, gridID string, body []byte) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, category, gridID, body))
}

type stubImages struct{}

func (stubImages) WeaponImage(w domain.GridWeapon, main bool) string {
	if main {
		return "main/" + w.Object.GranblueID
	}
	return "grid/" + w.Object.GranblueID
}
func (stubImages) SummonImage(s domain.GridSummon, _ bool) string { return "summon/" + s.Object.GranblueID }
func (stubImages) CharacterImage(c domain.GridCharacter) string   { return "chara/" + c.Object.GranblueID }

const device = "0b8e0a47-5a53-4b8f-9d8f-4a0b0e3b2a11"

func ok(body string) *backend.Response {
	return &backend.Response{StatusCode: http.StatusOK, Body: []byte(body)}
}

func newTestService(t *testing.T) (*MockBackend, *editkey.MemoryStore, Service) {
	t.Helper()
	mb := new(MockBackend)
	keys := editkey.NewMemoryStore(100, time.Hour)
	return mb, keys, NewService(mb, keys, stubImages{})
}

const anonymousParty = `{"party":{
	"id":"p1","shortcode":"abc123","name":"Fire Magna",
	"weapons":[
		{"id":"gw0","position":-1,"mainhand":true,"object":{"granblue_id":"1040"}},
		{"id":"gw1","position":0,"object":{"granblue_id":"1041"}},
		{"id":"gw2","position":0,"object":{"granblue_id":"1042"}}
	],
	"summons":[{"id":"gs0","position":-1,"main":true,"object":{"granblue_id":"2040"}}],
	"characters":[{"id":"gc1","position":1,"object":{"granblue_id":"3040"}}],
	"edit_key":"leaked"
}}`

func TestGet_BuildsView(t *testing.T) {
	mb, keys, svc := newTestService(t)
	ctx := context.Background()
	mb.On("GetParty", ctx, backend.Credentials{}, "abc123", "ja").Return(ok(anonymousParty), nil)

	require.NoError(t, keys.Put(ctx, device, "p1", "secret"))

	view, err := svc.Get(ctx, Actor{LocalID: device, Locale: "ja"}, "abc123")
	require.NoError(t, err)

	assert.Equal(t, "p1", view.Party.ID)
	assert.Empty(t, view.Party.EditKey, "edit key never reaches the view")
	require.NotNil(t, view.Grid.MainWeapon)
	assert.Equal(t, "gw0", view.Grid.MainWeapon.ID)
	assert.Equal(t, "gw1", view.Grid.AllWeapons[0].ID, "first item at a position wins")
	require.NotNil(t, view.Grid.MainSummon)
	assert.Equal(t, "main/1040", view.Grid.Images["gw0"])
	assert.Equal(t, "chara/3040", view.Grid.Images["gc1"])
	assert.True(t, view.CanEdit, "stored edit key grants edit")

	require.Len(t, view.Conflicts, 1)
	assert.Equal(t, grid.ConflictDuplicatePosition, view.Conflicts[0].Kind)
	mb.AssertExpectations(t)
}

func TestGet_CanEdit(t *testing.T) {
	owned := `{"party":{"id":"p2","shortcode":"own","user":{"id":"u1","username":"kat"}}}`
	anonymous := `{"party":{"id":"p3","shortcode":"anon","local_id":"` + device + `"}}`

	tests := []struct {
		name     string
		body     string
		actor    Actor
		expected bool
	}{
		{"owner", owned, Actor{UserID: "u1", Token: "t"}, true},
		{"other user", owned, Actor{UserID: "u2", Token: "t"}, false},
		{"anonymous viewer of owned party", owned, Actor{LocalID: device}, false},
		{"same device", anonymous, Actor{LocalID: device}, true},
		{"other device", anonymous, Actor{LocalID: "other"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mb, _, svc := newTestService(t)
			mb.On("GetParty", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(ok(tt.body), nil)

			view, err := svc.Get(context.Background(), tt.actor, "sc")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, view.CanEdit)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	mb, _, svc := newTestService(t)
	mb.On("GetParty", mock.Anything, mock.Anything, "missing", mock.Anything).
		Return(nil, &backend.APIError{StatusCode: http.StatusNotFound, Message: "not found"})

	_, err := svc.Get(context.Background(), Actor{}, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_MissingShortcode(t *testing.T) {
	_, _, svc := newTestService(t)
	_, err := svc.Get(context.Background(), Actor{}, "")
	assert.ErrorIs(t, err, domain.ErrMissingParam)
}

func TestCreate_AnonymousStoresEditKey(t *testing.T) {
	mb, keys, svc := newTestService(t)
	ctx := context.Background()

	hasLocalID := mock.MatchedBy(func(body []byte) bool {
		var req struct {
			Party struct {
				Name    string `json:"name"`
				LocalID string `json:"local_id"`
			} `json:"party"`
		}
		return json.Unmarshal(body, &req) == nil && req.Party.LocalID == device && req.Party.Name == "New"
	})
	mb.On("CreateParty", ctx, backend.Credentials{}, hasLocalID).
		Return(ok(`{"party":{"id":"p9","shortcode":"xyz","edit_key":"k9"}}`), nil)

	resp, err := svc.Create(ctx, Actor{LocalID: device}, []byte(`{"party":{"name":"New"}}`))
	require.NoError(t, err)
	assert.NotContains(t, string(resp.Body), "k9")
	assert.Contains(t, string(resp.Body), `"shortcode":"xyz"`)

	key, err := keys.Get(ctx, device, "p9")
	require.NoError(t, err)
	assert.Equal(t, "k9", key)
	mb.AssertExpectations(t)
}

func TestCreate_AuthenticatedForwardsBody(t *testing.T) {
	mb, keys, svc := newTestService(t)
	ctx := context.Background()
	body := []byte(`{"party":{"name":"Mine"}}`)

	mb.On("CreateParty", ctx, backend.Credentials{Token: "tok"}, body).
		Return(ok(`{"party":{"id":"p10"}}`), nil)

	_, err := svc.Create(ctx, Actor{Token: "tok", UserID: "u1", LocalID: device}, body)
	require.NoError(t, err)

	_, err = keys.Get(ctx, device, "p10")
	assert.ErrorIs(t, err, domain.ErrEditKeyNotPresent)
}

func TestUpdate_AttachesEditKey(t *testing.T) {
	mb, keys, svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, keys.Put(ctx, device, "p1", "secret"))

	body := []byte(`{"party":{"name":"Renamed"}}`)
	mb.On("UpdateParty", ctx, backend.Credentials{EditKey: "secret"}, "p1", body).
		Return(ok(`{"party":{"id":"p1","name":"Renamed"}}`), nil)

	resp, err := svc.Update(ctx, Actor{LocalID: device}, "p1", body)
	require.NoError(t, err)
	assert.Contains(t, string(resp.Body), "Renamed")
	mb.AssertExpectations(t)
}

func TestUpdate_BackendStatusPropagates(t *testing.T) {
	mb, _, svc := newTestService(t)
	apiErr := &backend.APIError{StatusCode: http.StatusUnprocessableEntity, Message: "name is too long"}
	mb.On("UpdateParty", mock.Anything, mock.Anything, "p1", mock.Anything).Return(nil, apiErr)

	_, err := svc.Update(context.Background(), Actor{}, "p1", []byte(`{}`))
	var got *backend.APIError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, http.StatusUnprocessableEntity, got.StatusCode)
}

func TestDelete_RemovesEditKey(t *testing.T) {
	mb, keys, svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, keys.Put(ctx, device, "p1", "secret"))

	mb.On("DeleteParty", ctx, backend.Credentials{EditKey: "secret"}, "p1").
		Return(&backend.Response{StatusCode: http.StatusNoContent}, nil)

	resp, err := svc.Delete(ctx, Actor{LocalID: device}, "p1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, err = keys.Get(ctx, device, "p1")
	assert.ErrorIs(t, err, domain.ErrEditKeyNotPresent)
}

func TestRemix_DefaultsBodyAndStoresKey(t *testing.T) {
	mb, keys, svc := newTestService(t)
	ctx := context.Background()

	mb.On("RemixParty", ctx, backend.Credentials{}, "abc123", mock.Anything).
		Return(ok(`{"id":"p11","shortcode":"rmx","edit_key":"k11"}`), nil)

	resp, err := svc.Remix(ctx, Actor{LocalID: device}, "abc123", nil)
	require.NoError(t, err)
	assert.NotContains(t, string(resp.Body), "k11")

	key, err := keys.Get(ctx, device, "p11")
	require.NoError(t, err)
	assert.Equal(t, "k11", key)
}

func TestFavorite(t *testing.T) {
	mb, _, svc := newTestService(t)
	ctx := context.Background()
	creds := backend.Credentials{Token: "tok"}
	mb.On("Favorite", ctx, creds, "p1").Return(ok(`{}`), nil)
	mb.On("Unfavorite", ctx, creds, "p1").Return(ok(`{}`), nil)

	_, err := svc.Favorite(ctx, Actor{Token: "tok"}, "p1")
	require.NoError(t, err)
	_, err = svc.Unfavorite(ctx, Actor{Token: "tok"}, "p1")
	require.NoError(t, err)
	_, err = svc.Favorite(ctx, Actor{Token: "tok"}, "")
	assert.ErrorIs(t, err, domain.ErrMissingParam)
	mb.AssertExpectations(t)
}

func TestGridItems(t *testing.T) {
	mb, keys, svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, keys.Put(ctx, device, "p1", "secret"))
	actor := Actor{LocalID: device}
	creds := backend.Credentials{EditKey: "secret"}
	body := []byte(`{"weapon":{"party_id":"p1","weapon_id":"w1","position":2}}`)

	mb.On("CreateGridItem", ctx, creds, domain.CategoryWeapon, body).Return(ok(`{"grid_weapon":{"id":"gw5"}}`), nil)
	mb.On("UpdateGridItem", ctx, creds, domain.CategoryWeapon, "gw5", body).Return(ok(`{}`), nil)
	mb.On("UpdateUncap", ctx, creds, domain.CategoryWeapon, "gw5", mock.Anything).Return(ok(`{}`), nil)
	mb.On("DeleteGridItem", ctx, creds, domain.CategoryWeapon, "gw5").Return(ok(`{"grid_weapon":{"id":"gw5","position":2}}`), nil)

	resp, err := svc.CreateGridItem(ctx, actor, "p1", domain.CategoryWeapon, body)
	require.NoError(t, err)
	assert.Contains(t, string(resp.Body), "gw5")

	_, err = svc.UpdateGridItem(ctx, actor, "p1", domain.CategoryWeapon, "gw5", body)
	require.NoError(t, err)
	_, err = svc.UpdateUncap(ctx, actor, "p1", domain.CategoryWeapon, "gw5", []byte(`{"id":"gw5","uncap_level":5}`))
	require.NoError(t, err)
	resp, err = svc.DeleteGridItem(ctx, actor, "p1", domain.CategoryWeapon, "gw5")
	require.NoError(t, err)
	assert.JSONEq(t, `{"grid_weapon":{"id":"gw5","position":2}}`, string(resp.Body))
	mb.AssertExpectations(t)
}

func TestGridItems_Validation(t *testing.T) {
	mb, _, svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateGridItem(ctx, Actor{}, "p1", "pet", nil)
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	_, err = svc.UpdateGridItem(ctx, Actor{}, "p1", domain.CategorySummon, "", nil)
	assert.ErrorIs(t, err, domain.ErrMissingParam)

	_, err = svc.DeleteGridItem(ctx, Actor{}, "", domain.CategorySummon, "gs1")
	assert.ErrorIs(t, err, domain.ErrMissingParam)

	mb.AssertNotCalled(t, "CreateGridItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTakeEditKey(t *testing.T) {
	t.Run("envelope", func(t *testing.T) {
		out, issued, err := takeEditKey([]byte(`{"party":{"id":"p1","edit_key":"k"},"meta":1}`))
		require.NoError(t, err)
		assert.Equal(t, issuedKey{PartyID: "p1", EditKey: "k"}, issued)
		assert.JSONEq(t, `{"party":{"id":"p1"},"meta":1}`, string(out))
	})

	t.Run("root", func(t *testing.T) {
		out, issued, err := takeEditKey([]byte(`{"id":"p1","edit_key":"k"}`))
		require.NoError(t, err)
		assert.Equal(t, "k", issued.EditKey)
		assert.JSONEq(t, `{"id":"p1"}`, string(out))
	})

	t.Run("no key leaves body untouched", func(t *testing.T) {
		in := []byte(`{"party":{"id":"p1"}}`)
		out, issued, err := takeEditKey(in)
		require.NoError(t, err)
		assert.Empty(t, issued.EditKey)
		assert.Equal(t, in, out)
	})

	t.Run("malformed", func(t *testing.T) {
		_, _, err := takeEditKey([]byte(`nope`))
		assert.ErrorIs(t, err, domain.ErrInvalidUpstream)
	})

	t.Run("empty body", func(t *testing.T) {
		out, issued, err := takeEditKey(nil)
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Empty(t, issued.PartyID)
	})
}

func TestMutations_KeepBackendStatus(t *testing.T) {
	mb, _, svc := newTestService(t)
	ctx := context.Background()

	mb.On("CreateParty", ctx, backend.Credentials{Token: "tok"}, mock.Anything).
		Return(&backend.Response{StatusCode: http.StatusOK, Body: []byte(`{"party":{"id":"p3","edit_key":"k3"}}`)}, nil)
	mb.On("UpdateParty", ctx, backend.Credentials{Token: "tok"}, "p3", mock.Anything).
		Return(&backend.Response{StatusCode: http.StatusNoContent}, nil)

	resp, err := svc.Create(ctx, Actor{Token: "tok"}, []byte(`{"party":{}}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"party":{"id":"p3"}}`, string(resp.Body))

	resp, err = svc.Update(ctx, Actor{Token: "tok"}, "p3", []byte(`{"party":{}}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Body)
}

func TestWithLocalID(t *testing.T) {
	out, err := withLocalID([]byte(`{"party":{"name":"x"}}`), device)
	require.NoError(t, err)
	assert.JSONEq(t, `{"party":{"name":"x","local_id":"`+device+`"}}`, string(out))

	in := []byte(`{"party":{"local_id":"mine"}}`)
	out, err = withLocalID(in, device)
	require.NoError(t, err)
	assert.Equal(t, in, out, "existing local id is kept")

	out, err = withLocalID([]byte(`{}`), device)
	require.NoError(t, err)
	assert.JSONEq(t, `{"party":{"local_id":"`+device+`"}}`, string(out))

	_, err = withLocalID([]byte(`[`), device)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
