package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GranblueTeam_Go/internal/backend"
	"github.com/osse101/GranblueTeam_Go/internal/catalog"
	"github.com/osse101/GranblueTeam_Go/internal/party"
	"github.com/osse101/GranblueTeam_Go/internal/session"
)

// MockPartyService is a mock implementation of party.Service
type MockPartyService struct {
	mock.Mock
}

func (m *MockPartyService) body(args mock.Arguments) ([]byte, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPartyService) Get(ctx context.Context, actor party.Actor, shortcode string) (*party.View, error) {
	args := m.Called(ctx, actor, shortcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.View), args.Error(1)
}

func (m *MockPartyService) List(ctx context.Context, actor party.Actor, query url.Values) ([]byte, error) {
	return m.body(m.Called(ctx, actor, query))
}

func (m *MockPartyService) response(args mock.Arguments) (*backend.Response, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Response), args.Error(1)
}

func (m *MockPartyService) Create(ctx context.Context, actor party.Actor, body []byte) (*backend.Response, error) {
	return m.response(m.Called(ctx, actor, body))
}

func (m *MockPartyService) Update(ctx context.Context, actor party.Actor, partyID string, body []byte) (*backend.Response, error) {
	return m.response(m.Called(ctx, actor, partyID, body))
}

func (m *MockPartyService) Delete(ctx context.Context, actor party.Actor, partyID string) (*backend.Response, error) {
	return m.response(m.Called(ctx, actor, partyID))
}

func (m *MockPartyService) Remix(ctx context.Context, actor party.Actor, shortcode string, body []byte) (*backend.Response, error) {
	return m.response(m.Called(ctx, actor, shortcode, body))
}

func (m *MockPartyService) Favorite(ctx context.Context, actor party.Actor, partyID string) (*backend.Response, error) {
	return m.response(m.Called(ctx, actor, partyID))
}

func (m *MockPartyService) Unfavorite(ctx context.Context, actor party.Actor, partyID string) (*backend.Response, error) {
	return m.response(m.Called(ctx, actor, partyID))
}

func (m *MockPartyService) CreateGridItem(ctx context.Context, actor party.Actor, partyID, category string, body []byte) (*backend.Response, error) {
	return m.response(m.Called(ctx, actor, partyID, category, body))
}

func (m *MockPartyService) UpdateGridItem(ctx context.Context, actor party.Actor, partyID, category, gridID string, body []byte) (*backend.Response, error) {
	return m.response(m.Called(ctx, actor, partyID, category, gridID, body))
}

func (m *MockPartyService) DeleteGridItem(ctx context.Context, actor party.Actor, partyID, category, gridID string) (*backend.Response, error) {
	return m.response(m.Called(ctx, actor, partyID, category, gridID))
}

func (m *MockPartyService) UpdateUncap(ctx context.Context, actor party.Actor, partyID, category, gridID string, body []byte) (*backend.Response, error) {
	return m.response(m.Called(ctx, actor, partyID, category, gridID, body))
}

// MockCatalog is a mock implementation of catalog.Service
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) body(args mock.Arguments) ([]byte, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCatalog) Get(ctx context.Context, resource, id, locale string) ([]byte, error) {
	return m.body(m.Called(ctx, resource, id, locale))
}

func (m *MockCatalog) List(ctx context.Context, resource string, query url.Values, locale string) ([]byte, error) {
	return m.body(m.Called(ctx, resource, query, locale))
}

func (m *MockCatalog) JobSkills(ctx context.Context, jobID, locale string) ([]byte, error) {
	return m.body(m.Called(ctx, jobID, locale))
}

func (m *MockCatalog) JobAccessories(ctx context.Context, jobID, locale string) ([]byte, error) {
	return m.body(m.Called(ctx, jobID, locale))
}

func (m *MockCatalog) Invalidate(resource, id string) {
	m.Called(resource, id)
}

func (m *MockCatalog) GetStats() catalog.CacheStats {
	return m.Called().Get(0).(catalog.CacheStats)
}

// MockBackend covers the remaining backend interfaces the handlers depend on
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) respond(args mock.Arguments) (*backend.Response, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Response), args.Error(1)
}

func (m *MockBackend) Search(ctx context.Context, creds backend.Credentials, object string, payload interface{}, locale string) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, object, payload, locale))
}

func (m *MockBackend) Login(ctx context.Context, email, password string) (*backend.TokenResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.TokenResponse), args.Error(1)
}

func (m *MockBackend) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockBackend) GetUserInfo(ctx context.Context, creds backend.Credentials, userID string) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, userID))
}

func (m *MockBackend) GetUser(ctx context.Context, creds backend.Credentials, username string, query url.Values, locale string) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, username, query, locale))
}

func (m *MockBackend) UpdateWeapon(ctx context.Context, creds backend.Credentials, weaponID string, payload interface{}) (*backend.Response, error) {
	return m.respond(m.Called(ctx, creds, weaponID, payload))
}

func ok(body string) *backend.Response {
	return reply(http.StatusOK, body)
}

func reply(status int, body string) *backend.Response {
	var raw []byte
	if body != "" {
		raw = []byte(body)
	}
	return &backend.Response{StatusCode: status, Body: raw}
}

// withSession attaches a session to the request as the session middleware would
func withSession(req *http.Request, s session.Session) *http.Request {
	if s.Locale == "" {
		s.Locale = "en"
	}
	return req.WithContext(session.WithSession(req.Context(), s))
}

// serve routes req through a chi router so URL params resolve
func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
