package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(h.withSession)

	// pages
	router.Get("/", h.homePage)
	router.Get("/encrypt_tool", h.encryptPage)
	router.Get("/decrypt_tool", h.decryptPage)
	router.Get("/exit", h.exitPage)

	router.Get("/download", h.download)

	// api
	router.With(h.withBodyLimit).Post("/api/encrypt", h.encrypt)
	router.With(h.withBodyLimit).Post("/api/decrypt", h.decrypt)
	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
