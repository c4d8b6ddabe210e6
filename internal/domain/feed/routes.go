package feed

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns feed routes mounted under /feed.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/followers/{id}", h.Followers)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Post("/follow/{id}", h.Follow)
		r.Delete("/follow/{id}", h.Unfollow)
	})

	return r
}
