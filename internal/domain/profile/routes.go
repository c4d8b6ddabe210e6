package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns profile routes
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/me", h.GetMe)
		r.Patch("/me", h.Update)
		r.Post("/me/avatar", h.UploadAvatar)
	})

	r.Get("/{id}", h.Get)

	return r
}
