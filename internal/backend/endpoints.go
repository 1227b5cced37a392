package backend

import (
	"context"
	"net/http"
	"net/url"
	"path"
)

func join(parts ...string) string {
	escaped := make([]string, 0, len(parts))
	for _, p := range parts {
		escaped = append(escaped, url.PathEscape(p))
	}
	return "/" + path.Join(escaped...)
}

// ============================================================================
// Parties
// ============================================================================

// GetParty fetches a party by shortcode
func (c *Client) GetParty(ctx context.Context, creds Credentials, shortcode, locale string) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointPartyGet,
		Method:      http.MethodGet,
		Path:        pathParties + join(shortcode),
		Credentials: creds,
		Locale:      locale,
	})
}

// ListParties lists public parties with backend filter params
func (c *Client) ListParties(ctx context.Context, creds Credentials, query url.Values, locale string) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointPartyList,
		Method:      http.MethodGet,
		Path:        pathParties,
		Query:       query,
		Credentials: creds,
		Locale:      locale,
	})
}

// CreateParty creates a party from a {"party": {...}} body
func (c *Client) CreateParty(ctx context.Context, creds Credentials, body []byte) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointPartyCreate,
		Method:      http.MethodPost,
		Path:        pathParties,
		Body:        body,
		Credentials: creds,
	})
}

// UpdateParty updates party details
func (c *Client) UpdateParty(ctx context.Context, creds Credentials, partyID string, body []byte) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointPartyUpdate,
		Method:      http.MethodPut,
		Path:        pathParties + join(partyID),
		Body:        body,
		Credentials: creds,
	})
}

// DeleteParty deletes a party
func (c *Client) DeleteParty(ctx context.Context, creds Credentials, partyID string) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointPartyDelete,
		Method:      http.MethodDelete,
		Path:        pathParties + join(partyID),
		Credentials: creds,
	})
}

// RemixParty copies a party by shortcode into a new party owned by the caller
func (c *Client) RemixParty(ctx context.Context, creds Credentials, shortcode string, body []byte) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointPartyRemix,
		Method:      http.MethodPost,
		Path:        pathParties + join(shortcode, segmentRemix),
		Body:        body,
		Credentials: creds,
	})
}

type favoriteBody struct {
	Favorite struct {
		PartyID string `json:"party_id"`
	} `json:"favorite"`
}

func newFavoriteBody(partyID string) favoriteBody {
	var b favoriteBody
	b.Favorite.PartyID = partyID
	return b
}

// Favorite marks a party as a favorite of the authenticated user
func (c *Client) Favorite(ctx context.Context, creds Credentials, partyID string) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointFavoriteAdd,
		Method:      http.MethodPost,
		Path:        pathFavorites,
		Body:        newFavoriteBody(partyID),
		Credentials: creds,
	})
}

// Unfavorite removes a party from the authenticated user's favorites
func (c *Client) Unfavorite(ctx context.Context, creds Credentials, partyID string) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointFavoriteRemove,
		Method:      http.MethodDelete,
		Path:        pathFavorites,
		Body:        newFavoriteBody(partyID),
		Credentials: creds,
	})
}

// ============================================================================
// Grid items
// ============================================================================

// GridResource returns the backend collection for a grid category
func GridResource(category string) string {
	return "grid_" + category + "s"
}

// CreateGridItem places a weapon, summon or character in a party
func (c *Client) CreateGridItem(ctx context.Context, creds Credentials, category string, body []byte) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointGridCreate,
		Method:      http.MethodPost,
		Path:        join(GridResource(category)),
		Body:        body,
		Credentials: creds,
	})
}

// UpdateGridItem updates a grid item's position or modifiers
func (c *Client) UpdateGridItem(ctx context.Context, creds Credentials, category, gridID string, body []byte) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointGridUpdate,
		Method:      http.MethodPut,
		Path:        join(GridResource(category), gridID),
		Body:        body,
		Credentials: creds,
	})
}

// DeleteGridItem removes a grid item
func (c *Client) DeleteGridItem(ctx context.Context, creds Credentials, category, gridID string) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointGridDelete,
		Method:      http.MethodDelete,
		Path:        join(GridResource(category), gridID),
		Credentials: creds,
	})
}

// UpdateUncap changes a grid item's uncap level and transcendence step
func (c *Client) UpdateUncap(ctx context.Context, creds Credentials, category, gridID string, body []byte) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointGridUncap,
		Method:      http.MethodPut,
		Path:        join(GridResource(category), gridID, segmentUncap),
		Body:        body,
		Credentials: creds,
	})
}

// ============================================================================
// Catalog
// ============================================================================

// GetCatalogObject fetches one catalog object, e.g. /summons/{id}
func (c *Client) GetCatalogObject(ctx context.Context, resource, id, locale string) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint: EndpointCatalogGet,
		Method:   http.MethodGet,
		Path:     "/" + resource + join(id),
		Locale:   locale,
	})
}

// ListCatalog fetches a catalog collection, e.g. /jobs or /raids/groups
func (c *Client) ListCatalog(ctx context.Context, resource string, query url.Values, locale string) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint: EndpointCatalogList,
		Method:   http.MethodGet,
		Path:     "/" + resource,
		Query:    query,
		Locale:   locale,
	})
}

// JobSkills lists the skills available to a job
func (c *Client) JobSkills(ctx context.Context, jobID, locale string) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint: EndpointJobSkills,
		Method:   http.MethodGet,
		Path:     "/" + ResourceJobs + join(jobID, ResourceSkills),
		Locale:   locale,
	})
}

// JobAccessories lists the accessories available to a job
func (c *Client) JobAccessories(ctx context.Context, jobID, locale string) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint: EndpointJobAccessories,
		Method:   http.MethodGet,
		Path:     "/" + ResourceJobs + join(jobID, ResourceAccessories),
		Locale:   locale,
	})
}

// UpdateWeapon replaces a catalog weapon's data
func (c *Client) UpdateWeapon(ctx context.Context, creds Credentials, weaponID string, payload interface{}) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointWeaponUpdate,
		Method:      http.MethodPut,
		Path:        "/" + ResourceWeapons + join(weaponID),
		Body:        payload,
		Credentials: creds,
	})
}

// ============================================================================
// Search
// ============================================================================

// Search runs a catalog search for object (characters, weapons, ...)
func (c *Client) Search(ctx context.Context, creds Credentials, object string, payload interface{}, locale string) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointSearch,
		Method:      http.MethodPost,
		Path:        pathSearch + join(object),
		Body:        payload,
		Credentials: creds,
		Locale:      locale,
	})
}

// ============================================================================
// Accounts
// ============================================================================

// TokenResponse is the backend's OAuth token grant
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	CreatedAt   int64  `json:"created_at"`
	User        struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Role     int    `json:"role"`
	} `json:"user"`
}

// Login exchanges email and password for an access token
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	var token TokenResponse
	err := c.DoJSON(ctx, Request{
		Endpoint: EndpointLogin,
		Method:   http.MethodPost,
		Path:     pathOAuthToken,
		Body: map[string]string{
			"email":      email,
			"password":   password,
			"grant_type": GrantTypePassword,
		},
	}, &token)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Logout revokes an access token
func (c *Client) Logout(ctx context.Context, token string) error {
	_, err := c.Do(ctx, Request{
		Endpoint:    EndpointLogout,
		Method:      http.MethodPost,
		Path:        pathOAuthRevoke,
		Body:        map[string]string{"token": token},
		Credentials: Credentials{Token: token},
	})
	return err
}

// GetUser fetches a public profile and its parties
func (c *Client) GetUser(ctx context.Context, creds Credentials, username string, query url.Values, locale string) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointUserGet,
		Method:      http.MethodGet,
		Path:        pathUsers + join(username),
		Query:       query,
		Credentials: creds,
		Locale:      locale,
	})
}

// GetUserInfo fetches the private account settings for a user id
func (c *Client) GetUserInfo(ctx context.Context, creds Credentials, userID string) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint:    EndpointUserInfo,
		Method:      http.MethodGet,
		Path:        pathUserInfo + join(userID),
		Credentials: creds,
	})
}

// Version fetches the backend's deployed version
func (c *Client) Version(ctx context.Context) (*Response, error) {
	return c.Do(ctx, Request{
		Endpoint: EndpointVersion,
		Method:   http.MethodGet,
		Path:     pathVersion,
	})
}
