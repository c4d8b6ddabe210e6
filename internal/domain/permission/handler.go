package permission

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/majlis/majlis-api/internal/middleware"
	"github.com/majlis/majlis-api/internal/pkg/response"
	"github.com/majlis/majlis-api/internal/pkg/validator"
)

// Handler handles permission HTTP requests
type Handler struct {
	store    *Store
	resolver *Resolver
}

// NewHandler creates permission handler
func NewHandler(store *Store, resolver *Resolver) *Handler {
	return &Handler{store: store, resolver: resolver}
}

// List returns every grant row for the admin permission screen
// GET /admin/permissions
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	grants, err := h.store.List(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, grants)
}

// Update toggles a grant on or off
// PATCH /admin/permissions/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid grant ID")
		return
	}

	var req UpdateGrantRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	g, err := h.store.SetGrantEnabled(r.Context(), id, *req.Enabled)
	if err != nil {
		if err == ErrGrantNotFound {
			response.NotFound(w, "Grant not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, g)
}

// Me returns the caller's resolved permission set
// GET /permissions/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	perms, err := h.resolver.Permissions(r.Context(), userID)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, perms)
}
