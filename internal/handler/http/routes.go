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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
	})

	// routes behind the auth guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/logout", h.logout)
		r.Get("/api/me", h.me)
		r.Patch("/api/me", h.updateMe)

		r.Post("/api/files", h.createDocument)
		r.Get("/api/files", h.listDocuments)
		r.Delete("/api/files/{id}", h.deleteDocument)
	})

	return router
}
