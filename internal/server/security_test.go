package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	middleware := SecurityHeadersMiddleware()

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}

	for header, expected := range expectedHeaders {
		if got := rec.Header().Get(header); got != expected {
			t.Errorf("expected header %s to be %q, got %q", header, expected, got)
		}
	}
}

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector(DetectorConfig{MaxRequests: 50})
	middleware := SecurityLoggingMiddleware(nil, detector)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", rec.Code)
	}

	detector.mu.Lock()
	count := detector.requestCountByIP[ip]
	detector.mu.Unlock()

	if count != 51 {
		t.Errorf("expected count 51, got %d", count)
	}

	// other addresses are unaffected
	other := httptest.NewRequest("GET", "/test", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDetector_WindowResets(t *testing.T) {
	detector := NewSuspiciousActivityDetector(DetectorConfig{Window: 10 * time.Millisecond, FailedLoginLimit: 2})
	detector.RecordFailedLogin("10.0.0.1")
	detector.RecordFailedLogin("10.0.0.1")
	assert.True(t, detector.LoginLocked("10.0.0.1"))

	time.Sleep(20 * time.Millisecond)
	assert.False(t, detector.LoginLocked("10.0.0.1"))
}

func TestLoginGuardMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector(DetectorConfig{FailedLoginLimit: 3})
	status := http.StatusUnauthorized
	handler := LoginGuardMiddleware(nil, detector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusUnauthorized, send("10.0.0.5:4000"))
	}
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.5:4000"), "locked after the limit")

	status = http.StatusOK
	assert.Equal(t, http.StatusOK, send("10.0.0.6:4000"), "successful sign ins are not counted")
	assert.False(t, detector.LoginLocked("10.0.0.6"))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		expected  string
	}{
		{"direct", "203.0.113.7:5555", "", nil, "203.0.113.7"},
		{"untrusted forwarded ignored", "203.0.113.7:5555", "1.2.3.4", nil, "203.0.113.7"},
		{"trusted proxy", "10.0.0.2:80", "1.2.3.4, 198.51.100.9", []string{"10.0.0.2"}, "198.51.100.9"},
		{"unparseable remote", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.expected, extractIP(req, tt.trusted))
		})
	}
}
