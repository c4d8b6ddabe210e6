package admin

import "github.com/go-chi/chi/v5"

// Routes returns admin user management routes, mounted under
// /admin/users behind the admin middleware chain.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListUsers)
	r.Patch("/{id}/role", h.UpdateRole)
	r.Patch("/{id}/ban", h.SetBanned)

	return r
}
