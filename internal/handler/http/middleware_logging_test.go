package http

import (
	"bytes"
	"strings"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeLoggedRequest creates a request carrying a logger that writes to buf,
// the same way withTraceID attaches one.
func makeLoggedRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		status     int
		body       string
		wantStatus int
		wantSize   int
		wantLevel  string
	}{
		{name: "ok with body", method: http.MethodGet, path: "/api/version", status: http.StatusOK, body: "1.0.0", wantStatus: 200, wantSize: 5, wantLevel: "info"},
		{name: "redirect", method: http.MethodGet, path: "/download", status: http.StatusSeeOther, wantStatus: 303, wantLevel: "info"},
		{name: "bad request", method: http.MethodPost, path: "/api/decrypt", status: http.StatusBadRequest, body: `{"success":false}`, wantStatus: 400, wantSize: 17, wantLevel: "warn"},
		{name: "server error", method: http.MethodPost, path: "/api/encrypt", status: http.StatusInternalServerError, wantStatus: 500, wantLevel: "error"},
		{name: "implicit 200", method: http.MethodGet, path: "/", body: "<html>", wantStatus: 200, wantSize: 6, wantLevel: "info"},
		{name: "nothing written", method: http.MethodGet, path: "/exit", wantStatus: 200, wantLevel: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, makeLoggedRequest(tt.method, tt.path, &buf))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.path, entry["uri"])
			assert.Equal(t, tt.method, entry["method"])
			assert.EqualValues(t, tt.wantStatus, entry["status"])
			assert.EqualValues(t, tt.wantSize, entry["size"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Contains(t, entry, "duration")
			assert.NotContains(t, entry, "route")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestWithLogging_DoesNotLogQueryOrBody(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	req := makeLoggedRequest(http.MethodGet, "/?password=hunter2", &buf)
	h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, buf.String(), "hunter2")
}

func TestWithLogging_RecordsRoutePattern(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	router := chi.NewRouter()
	router.Use(h.withLogging)
	router.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {})

	router.ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(http.MethodGet, "/api/version", &buf))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "/api/version", entry["route"])
}
