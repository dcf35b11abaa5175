package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/MKhiriev/go-file-cipher/internal/utils"
	"github.com/rs/zerolog"
)

const (
	sessionCookieName = "session_id"

	// sessionFingerprintLength is the number of hex digits of the keyed
	// session hash written to logs in place of the session id.
	sessionFingerprintLength = 12
)

// withSession ties every request to a session id carried in a signed cookie.
// A missing or forged cookie is replaced with a fresh session, so the
// verified id is always available via utils.GetSessionIDFromContext. The
// request logger gains a "session" field holding a keyed fingerprint of the id.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			sessionID, _ = utils.VerifySignedValue(cookie.Value, h.sessionKey)
		}

		if sessionID == "" {
			sessionID = h.sessionIDs.Generate()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    utils.SignValue(sessionID, h.sessionKey),
				Path:     "/",
				HttpOnly: true,
				Secure:   r.TLS != nil,
				SameSite: http.SameSiteLaxMode,
			})
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("session", sessionFingerprint(sessionID, h.sessionKey))
		})

		ctx := context.WithValue(r.Context(), utils.SessionIDCtxKey, sessionID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

func sessionFingerprint(sessionID, key string) string {
	return utils.HashString(sessionID, key)[:sessionFingerprintLength]
}
