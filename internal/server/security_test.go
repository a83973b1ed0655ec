package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
		providedKey    string
		expectedStatus int
	}{
		{name: "Valid API Key", providedKey: apiKey, expectedStatus: http.StatusOK},
		{name: "Invalid API Key", providedKey: "wrong-key", expectedStatus: http.StatusUnauthorized},
		{name: "Missing API Key", providedKey: "", expectedStatus: http.StatusUnauthorized},
		{name: "Key Prefix", providedKey: "secret", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector()
			handler := AuthMiddleware(apiKey, nil, detector)(okHandler())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				var body errorBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, ErrMsgUnauthorized, body.Error)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := AuthMiddleware("secret-key", nil, detector)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
		req.RemoteAddr = "10.1.1.1:5555"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 3, detector.failedAuthCount("10.1.1.1"))
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
}

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := SecurityLoggingMiddleware(nil, detector)(okHandler())

	ip := "192.168.1.100"
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < MaxRequestsPerWindow; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	assert.Equal(t, MaxRequestsPerWindow+1, detector.requestCount(ip))
}

func TestSuspiciousActivityDetector_WindowReset(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	detector := newDetectorAt(func() time.Time { return now })

	for i := 0; i < MaxRequestsPerWindow; i++ {
		require.True(t, detector.RecordRequest("1.2.3.4"))
	}
	assert.False(t, detector.RecordRequest("1.2.3.4"))

	now = now.Add(DetectorWindow + time.Second)
	assert.True(t, detector.RecordRequest("1.2.3.4"))
	assert.Equal(t, 1, detector.requestCount("1.2.3.4"))
}

func TestSuspiciousActivityDetector_AlertsOnDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	detector := NewSuspiciousActivityDetector()
	for i := 0; i < FailedAuthAlertCount-1; i++ {
		detector.RecordFailedAuth("9.9.9.9")
	}
	assert.NotContains(t, buf.String(), SecurityAlertFailedAuth)

	detector.RecordFailedAuth("9.9.9.9")
	out := buf.String()
	assert.Contains(t, out, SecurityAlertFailedAuth)
	assert.Contains(t, out, "ip=9.9.9.9")
	assert.Contains(t, out, "level=WARN")
}

func TestParseProxies(t *testing.T) {
	proxies := parseProxies([]string{"10.0.0.1", "172.16.0.0/12", "not-an-ip", "::1"})
	require.Len(t, proxies, 3)

	assert.True(t, proxies.trusts("10.0.0.1"))
	assert.False(t, proxies.trusts("10.0.0.2"))
	assert.True(t, proxies.trusts("172.20.1.9"))
	assert.True(t, proxies.trusts("::1"))
	assert.True(t, proxies.trusts("::ffff:10.0.0.1"))
	assert.False(t, proxies.trusts("garbage"))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		expected   string
	}{
		{name: "direct", remoteAddr: "203.0.113.5:4000", expected: "203.0.113.5"},
		{name: "untrusted forwarded ignored", remoteAddr: "203.0.113.5:4000", forwarded: "1.1.1.1", expected: "203.0.113.5"},
		{name: "trusted proxy uses rightmost hop", remoteAddr: "10.0.0.1:80", forwarded: "1.1.1.1, 2.2.2.2", trusted: []string{"10.0.0.1"}, expected: "2.2.2.2"},
		{name: "trusted proxy without header", remoteAddr: "10.0.0.1:80", trusted: []string{"10.0.0.1"}, expected: "10.0.0.1"},
		{name: "trusted cidr", remoteAddr: "172.16.4.4:80", forwarded: "3.3.3.3", trusted: []string{"172.16.0.0/12"}, expected: "3.3.3.3"},
		{name: "empty last hop falls back", remoteAddr: "10.0.0.1:80", forwarded: "1.1.1.1, ", trusted: []string{"10.0.0.1"}, expected: "10.0.0.1"},
		{name: "unparseable remote addr", remoteAddr: "garbage", expected: "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.expected, extractIP(req, parseProxies(tt.trusted)))
		})
	}
}
