package server

import (
	"crypto/subtle"
	"encoding/json"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: message})
}

// proxyList holds the networks whose X-Forwarded-For header is believed.
// Entries may be single addresses or CIDR ranges; unparseable entries are skipped.
type proxyList []netip.Prefix

func parseProxies(entries []string) proxyList {
	var list proxyList
	for _, entry := range entries {
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			list = append(list, prefix.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			list = append(list, netip.PrefixFrom(addr, addr.BitLen()))
		}
	}
	return list
}

func (p proxyList) trusts(host string) bool {
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range p {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// extractIP returns the client address. X-Forwarded-For is only honored when the
// direct peer is a trusted proxy, and then only its rightmost hop.
func extractIP(r *http.Request, proxies proxyList) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}
	if !proxies.trusts(remote) {
		return remote
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remote
	}
	hops := strings.Split(forwarded, ",")
	if last := strings.TrimSpace(hops[len(hops)-1]); last != "" {
		return last
	}
	return remote
}

// AuthMiddleware rejects requests without the configured X-API-Key.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	proxies := parseProxies(trustedProxies)
	expected := []byte(apiKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), expected) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := extractIP(r, proxies)
			detector.RecordFailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"has_key", provided != "")

			writeJSONError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		})
	}
}

// SecurityLoggingMiddleware enforces the per-IP request budget.
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	proxies := parseProxies(trustedProxies)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, proxies)) {
				writeJSONError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

var securityHeaders = [][2]string{
	{HeaderContentType, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueSameOrigin},
	{HeaderXSSProtection, HeaderValueXSSBlock},
	{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
}

func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, kv := range securityHeaders {
				h.Set(kv[0], kv[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
