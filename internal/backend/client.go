package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
	"github.com/osse101/GranblueTeam_Go/internal/logger"
	"github.com/osse101/GranblueTeam_Go/internal/metrics"
)

// Credentials are attached to a backend request on behalf of the viewer
type Credentials struct {
	Token   string
	EditKey string
}

// Request describes one backend call
type Request struct {
	Endpoint    string
	Method      string
	Path        string
	Query       url.Values
	Body        interface{}
	Credentials Credentials
	Locale      string
}

// Response is a successful backend response with its raw body
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client talks to the backend REST API.
// Requests are never retried; failures surface to the caller immediately.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a backend client for baseURL (including any /api/v1 prefix)
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewClientWithHTTP creates a backend client using a caller-supplied http.Client
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// BaseURL returns the configured backend root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs a request. Non-2xx statuses return *APIError.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	log := logger.FromContext(ctx)

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal body: %w", req.Endpoint, err)
	}

	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", req.Endpoint, err)
	}
	httpReq.Header.Set(HeaderAccept, ContentTypeJSON)
	if body != nil {
		httpReq.Header.Set(HeaderContentType, ContentTypeJSON)
	}
	if req.Credentials.Token != "" {
		httpReq.Header.Set(HeaderAuthorization, BearerPrefix+req.Credentials.Token)
	}
	if req.Credentials.EditKey != "" {
		httpReq.Header.Set(HeaderEditKey, req.Credentials.EditKey)
	}
	if req.Locale != "" {
		httpReq.Header.Set(HeaderAcceptLanguage, req.Locale)
	}
	if id := logger.GetRequestID(ctx); id != "" {
		httpReq.Header.Set(HeaderRequestID, id)
	}

	log.Debug(LogMsgBackendRequest, "endpoint", req.Endpoint, "method", req.Method, "path", req.Path)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		metrics.ObserveBackend(req.Endpoint, 0, time.Since(start))
		log.Warn(LogMsgBackendFailed, "endpoint", req.Endpoint, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUpstream, req.Endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	metrics.ObserveBackend(req.Endpoint, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading body: %v", domain.ErrUpstream, req.Endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := newAPIError(req.Endpoint, resp.StatusCode, data)
		log.Info(LogMsgBackendErrorStatus, "endpoint", req.Endpoint, "status", resp.StatusCode, "message", apiErr.Message)
		return nil, apiErr
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// DoJSON performs a request and decodes the response body into out
func (c *Client) DoJSON(ctx context.Context, req Request, out interface{}) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidUpstream, req.Endpoint, err)
	}
	return nil
}

// encodeBody passes raw JSON through untouched and marshals anything else
func encodeBody(body interface{}) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		if len(b) == 0 {
			return nil, nil
		}
		return bytes.NewReader(b), nil
	case json.RawMessage:
		if len(b) == 0 {
			return nil, nil
		}
		return bytes.NewReader(b), nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	}
}

// DecodeParty reads a party from a body that is either {"party": {...}} or the party itself
func DecodeParty(body []byte) (domain.Party, error) {
	var party domain.Party
	err := DecodeEnvelope(body, envelopeKeyParty, &party)
	return party, err
}

// DecodeEnvelope unmarshals body[key] into out, or body itself when it has no such object
func DecodeEnvelope(body []byte, key string, out interface{}) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidUpstream, err)
	}
	raw, ok := envelope[key]
	if !ok || len(raw) == 0 || raw[0] != '{' {
		raw = body
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidUpstream, err)
	}
	return nil
}
