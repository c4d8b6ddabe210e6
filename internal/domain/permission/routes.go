package permission

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AdminRoutes returns grant management routes, mounted under
// /admin/permissions behind the admin middleware chain.
func (h *Handler) AdminRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Patch("/{id}", h.Update)

	return r
}

// Routes returns routes mounted under /permissions for any
// authenticated user.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/me", h.Me)
	})

	return r
}
