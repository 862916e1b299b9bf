package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"

	tests := []struct {
		name           string
		configuredKey  string
		providedKey    string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, apiKey, http.StatusOK},
		{"Invalid API Key", apiKey, "wrong-key", http.StatusUnauthorized},
		{"Missing API Key", apiKey, "", http.StatusUnauthorized},
		{"Empty configured key rejects everything", "", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector(0, 0)
			h := AuthMiddleware(tt.configuredKey, nil, detector)(okHandler())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reload", nil)
			req.RemoteAddr = "10.0.0.1:5555"
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, 1, detector.FailedAuthCount("10.0.0.1"))
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector(3, time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	detector.now = func() time.Time { return now }
	detector.reset()

	h := RateLimitMiddleware(nil, detector)(okHandler())
	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/materials", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do("192.168.1.100:1234"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, do("192.168.1.100:1234"))
	assert.Equal(t, http.StatusOK, do("192.168.1.101:1234"), "other clients are unaffected")

	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, do("192.168.1.100:1234"), "new window resets the count")
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct", "203.0.113.9:443", "", nil, "203.0.113.9"},
		{"untrusted proxy header ignored", "203.0.113.9:443", "1.2.3.4", nil, "203.0.113.9"},
		{"trusted proxy uses rightmost hop", "10.0.0.2:80", "1.2.3.4, 5.6.7.8", []string{"10.0.0.2"}, "5.6.7.8"},
		{"trusted proxy without header", "10.0.0.2:80", "", []string{"10.0.0.2"}, "10.0.0.2"},
		{"unparseable remote addr", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueDeny, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}
