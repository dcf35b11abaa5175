package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request. Request bodies and
// query strings are never logged: they carry passwords and file contents.
// Rejected uploads log at warn level and server failures at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		event := accessLogEvent(logger.FromRequest(r), status).
			Str("uri", r.URL.Path).
			Str("method", r.Method)
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			event = event.Str("route", rctx.RoutePattern())
		}

		event.
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Int64("content_length", r.ContentLength).
			Send()
	})
}

func accessLogEvent(l *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return l.Error()
	case status >= http.StatusBadRequest:
		return l.Warn()
	default:
		return l.Info()
	}
}
