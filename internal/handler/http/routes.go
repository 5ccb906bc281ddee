package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.recoverer)
	router.Use(withCORS)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/user", h.profile)

			r.Route("/notes", func(r chi.Router) {
				r.Get("/", h.listNotes)
				r.Post("/", h.createNote)
				r.Get("/{id}", h.getNote)
				r.Put("/{id}", h.updateNote)
				r.Delete("/{id}", h.trashNote)
				r.Put("/{id}/restore", h.restoreNote)
				r.Delete("/{id}/permanent", h.purgeNote)
			})
		})
	})

	return router
}
