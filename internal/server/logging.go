package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

type loggedResponse struct {
	http.ResponseWriter
	status int
}

func (lr *loggedResponse) WriteHeader(code int) {
	if lr.status == 0 {
		lr.status = code
	}
	lr.ResponseWriter.WriteHeader(code)
}

func (lr *loggedResponse) Write(b []byte) (int, error) {
	if lr.status == 0 {
		lr.status = http.StatusOK
	}
	return lr.ResponseWriter.Write(b)
}

func (lr *loggedResponse) Unwrap() http.ResponseWriter {
	return lr.ResponseWriter
}

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// requestID keeps a well-formed caller-supplied ID so traces line up across
// proxies, and mints one otherwise.
func requestID(r *http.Request) string {
	id := r.Header.Get(HeaderRequestID)
	if id == "" || len(id) > MaxRequestIDLength {
		return logger.GenerateRequestID()
	}
	for _, c := range id {
		if c <= ' ' || c > '~' {
			return logger.GenerateRequestID()
		}
	}
	return id
}

func redactedHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// loggingMiddleware tags the request context with a request ID and logs start and
// completion. Health and metrics scrapes pass through silently.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		id := requestID(r)
		w.Header().Set(HeaderRequestID, id)

		ctx := logger.WithRequestID(r.Context(), id)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactedHeaders(r.Header))

		lr := &loggedResponse{ResponseWriter: w}
		next.ServeHTTP(lr, r)
		if lr.status == 0 {
			lr.status = http.StatusOK
		}

		log.Log(ctx, levelForStatus(lr.status), LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", lr.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
