package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/MKhiriev/go-file-cipher/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSession passes r through withSession and returns the recorder together
// with the session id seen by the next handler.
func runSession(t *testing.T, h *Handler, r *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := utils.GetSessionIDFromContext(r.Context())
		require.True(t, ok, "session id must be in context")
		seen = id
	})

	rec := httptest.NewRecorder()
	h.withSession(next).ServeHTTP(rec, r)
	return rec, seen
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

func TestWithSession_NewSessionSetsSignedCookie(t *testing.T) {
	h := newTestHandler(&mockCipherService{})

	rec, sessionID := runSession(t, h, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, sessionID)
	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, utils.SignValue(sessionID, testSessionKey), cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestWithSession_ValidCookieIsReused(t *testing.T) {
	h := newTestHandler(&mockCipherService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: utils.SignValue("existing-session", testSessionKey)})

	rec, sessionID := runSession(t, h, req)

	assert.Equal(t, "existing-session", sessionID)
	assert.Nil(t, sessionCookie(t, rec), "a valid session must not be re-issued")
}

func TestWithSession_ForgedCookieIsReplaced(t *testing.T) {
	h := newTestHandler(&mockCipherService{})

	for _, value := range []string{
		"existing-session",
		utils.SignValue("existing-session", "another-key"),
		"existing-session.deadbeef",
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: value})

		rec, sessionID := runSession(t, h, req)

		assert.NotEqual(t, "existing-session", sessionID, "cookie %q", value)
		assert.NotNil(t, sessionCookie(t, rec))
	}
}

func TestWithSession_SessionsAreUnique(t *testing.T) {
	h := newTestHandler(&mockCipherService{})

	_, first := runSession(t, h, httptest.NewRequest(http.MethodGet, "/", nil))
	_, second := runSession(t, h, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first, second)
}

func TestWithSession_LogsFingerprintNotID(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&mockCipherService{})
	h.logger = logger.New("test", &buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: utils.SignValue("existing-session", testSessionKey)})
	h.withTraceID(h.withSession(next)).ServeHTTP(httptest.NewRecorder(), req)

	fingerprint := sessionFingerprint("existing-session", testSessionKey)
	assert.Len(t, fingerprint, sessionFingerprintLength)
	assert.Contains(t, buf.String(), `"session":"`+fingerprint+`"`)
	assert.NotContains(t, buf.String(), "existing-session")
}
