package admin

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/majlis/majlis-api/internal/domain/user"
	"github.com/majlis/majlis-api/internal/middleware"
	"github.com/majlis/majlis-api/internal/pkg/response"
	"github.com/majlis/majlis-api/internal/pkg/validator"
)

// Handler handles admin HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates admin handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListUsers returns user accounts with optional role filter
// GET /admin/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter := &user.ListFilter{Limit: 50}

	if raw := r.URL.Query().Get("role"); raw != "" {
		if !user.IsValidRole(raw) {
			response.BadRequest(w, "Invalid role")
			return
		}
		filter.Role = user.Role(raw)
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			filter.Limit = n
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			filter.Offset = n
		}
	}

	users, total, err := h.service.ListUsers(r.Context(), filter)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.WithMeta(w, users, response.Meta{
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// UpdateRole assigns a user a new role
// PATCH /admin/users/{id}/role
func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r.Context())

	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req UpdateRoleRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	u, err := h.service.UpdateRole(r.Context(), actorID, userID, user.Role(req.Role))
	if err != nil {
		if err == user.ErrUserNotFound {
			response.NotFound(w, "User not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, u)
}

// SetBanned bans or unbans a user
// PATCH /admin/users/{id}/ban
func (h *Handler) SetBanned(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r.Context())

	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req BanRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	u, err := h.service.SetBanned(r.Context(), actorID, userID, *req.Banned)
	if err != nil {
		if err == user.ErrUserNotFound {
			response.NotFound(w, "User not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, u)
}
