package http

import "net/http"

// multipartOverhead is the allowance for multipart boundaries, headers and
// the password field on top of the file itself.
const multipartOverhead = 64 << 10

// withBodyLimit caps the request body at the configured upload size.
// Reading past the cap fails with *http.MaxBytesError.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.maxUploadSize > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
		}
		next.ServeHTTP(w, r)
	})
}
