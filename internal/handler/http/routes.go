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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Get("/api/auth/salt", h.salt)
		r.Post("/api/auth/login", h.login)
	})

	// routes that require a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.With(h.uploadHashing).Post("/api/files", h.upload)
		r.Get("/api/files", h.list)
		r.Get("/api/files/{fileID}", h.download)
		r.Delete("/api/files/{fileID}", h.deleteFile)
	})

	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
