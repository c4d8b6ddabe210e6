package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// TopicRoutes returns routes mounted under /topics/{id}/comments.
func (h *Handler) TopicRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListByTopic)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
	})

	return r
}

// Routes returns routes mounted under /comments. Hiding is staff only.
func (h *Handler) Routes(authMiddleware, staffMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/like", h.Like)
	})

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(staffMiddleware)
		r.Post("/{id}/hide", h.Hide)
	})

	return r
}
