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
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/logout", h.logout)
		r.Post("/api/generate", h.generate)
	})

	// routes requiring a valid session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/vault", func(r chi.Router) {
			r.Get("/", h.listVaultItems)
			r.Post("/", h.createVaultItem)
			r.Put("/{id}", h.updateVaultItem)
			r.Delete("/{id}", h.deleteVaultItem)
		})
	})

	return router
}
