// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// A request whose path matches a route but whose method does not gets 404
// instead of chi's 405, so upload endpoints are not advertised to a GET and
// pages are not advertised to a POST. HEAD on a GET route is served by the
// GET handler; the server drops the body.
//
// Matching compares route patterns with the raw request path. Parameterised
// patterns are not expanded; the file cipher routes have none.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		handlers := routeHandlers(router, r.URL.Path)

		method := r.Method
		if method == http.MethodHead {
			if _, ok := handlers[http.MethodHead]; !ok {
				method = http.MethodGet
			}
		}

		// the middleware chain already ran, call the endpoint directly
		if handler, ok := handlers[method]; ok {
			handler.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("method is not served on this path")
		w.WriteHeader(http.StatusNotFound)
	}
}

func routeHandlers(router *chi.Mux, path string) map[string]http.Handler {
	for _, route := range router.Routes() {
		if route.Pattern == path {
			return route.Handlers
		}
	}
	return nil
}
