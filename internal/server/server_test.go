package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GranblueTeam_Go/internal/assets"
	"github.com/osse101/GranblueTeam_Go/internal/backend"
	"github.com/osse101/GranblueTeam_Go/internal/catalog"
	"github.com/osse101/GranblueTeam_Go/internal/editkey"
	"github.com/osse101/GranblueTeam_Go/internal/handler"
	"github.com/osse101/GranblueTeam_Go/internal/party"
	"github.com/osse101/GranblueTeam_Go/internal/session"
	"github.com/osse101/GranblueTeam_Go/internal/validation"
)

const partyJSON = `{"party":{
	"id":"p1","shortcode":"abc","name":"Ultima","local_id":"",
	"user":{"id":"owner-1","username":"kat"},
	"weapons":[
		{"id":"gw1","position":-1,"mainhand":true,"uncap_level":4,"object":{"id":"w1","granblue_id":"1040019000","name":{"en":"Ultima Sword"}}},
		{"id":"gw2","position":0,"uncap_level":3,"object":{"id":"w2","granblue_id":"1040019100","name":{"en":"Ultima Dagger"}}}
	],
	"summons":[],"characters":[]
}}`

// fakeBackend records the edit key seen on each mutation
type fakeBackend struct {
	mu       sync.Mutex
	editKeys []string
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/v1/parties/abc":
		_, _ = w.Write([]byte(partyJSON))
	case r.Method == http.MethodPost && r.URL.Path == "/api/v1/parties":
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"party":{"id":"p9","shortcode":"new","edit_key":"secret-key"}}`))
	case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/parties/p9":
		w.WriteHeader(http.StatusNoContent)
	case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/grid_weapons/gw1":
		_, _ = w.Write([]byte(`{"grid_weapon":{"id":"gw1","position":3}}`))
	case r.Method == http.MethodPut && r.URL.Path == "/api/v1/parties/p9":
		f.mu.Lock()
		f.editKeys = append(f.editKeys, r.Header.Get(backend.HeaderEditKey))
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"party":{"id":"p9"}}`))
	case r.URL.Path == "/api/v1/version":
		_, _ = w.Write([]byte(`{"version":"2.4.0"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}
}

func newTestRouter(t *testing.T) (http.Handler, *fakeBackend) {
	t.Helper()
	fake := &fakeBackend{}
	upstream := httptest.NewServer(fake)
	t.Cleanup(upstream.Close)

	client := backend.NewClient(upstream.URL+"/api/v1", time.Second)
	catalogService := catalog.NewService(client, catalog.DefaultCacheConfig())
	deps := Dependencies{
		Backend:  client,
		Parties:  party.NewService(client, editkey.NewMemoryStore(100, time.Hour), assets.NewImages("https://cdn.example")),
		Catalog:  catalogService,
		Sessions: session.NewManager(session.CookieOptions{}),
		Bodies:   validation.NewBodyValidator(),
		Checkers: []handler.HealthChecker{backend.NewHealthChecker(client)},
	}
	return NewRouter(Options{}, deps), fake
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nothing/here", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestRouter_GetPartyView(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/parties/abc", nil)
	req.AddCookie(&http.Cookie{
		Name:  session.CookieAccount,
		Value: `%7B%22userId%22%3A%22owner-1%22%2C%22token%22%3A%22t%22%7D`,
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view struct {
		CanEdit bool `json:"canEdit"`
		Grid    struct {
			MainWeapon *struct {
				ID string `json:"id"`
			} `json:"mainWeapon"`
			AllWeapons map[string]json.RawMessage `json:"allWeapons"`
		} `json:"grid"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.True(t, view.CanEdit, "owner can edit")
	require.NotNil(t, view.Grid.MainWeapon)
	assert.Equal(t, "gw1", view.Grid.MainWeapon.ID)
	assert.Len(t, view.Grid.AllWeapons, 1, "mainhand is not repeated in allWeapons")
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestRouter_AnonymousEditKeyFlow(t *testing.T) {
	router, fake := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/parties", strings.NewReader(`{"party":{"name":"Fire"}}`)))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-key", "edit keys stay on the gateway")

	var device *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieLocalID {
			device = c
		}
	}
	require.NotNil(t, device, "first visit issues a device token")

	req := httptest.NewRequest(http.MethodPut, "/api/parties/p9", strings.NewReader(`{"party":{"name":"Fire 2"}}`))
	req.AddCookie(device)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/api/parties/p9", strings.NewReader(`{"party":{"name":"Other device"}}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.editKeys, 2)
	assert.Equal(t, "secret-key", fake.editKeys[0])
	assert.Empty(t, fake.editKeys[1], "another device has no key for the party")
}

func TestRouter_DeletesForwardBackendResponse(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/parties/p1/grid/weapon/gw1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"grid_weapon":{"id":"gw1","position":3}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/parties/p9", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRouter_EditorRouteNeedsAccount(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/weapons/w1", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"`+handler.ErrMsgUnauthorized+`"}`, rec.Body.String())
}

func TestRouter_CatalogNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/summons/123", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}
