package feed

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/majlis/majlis-api/internal/middleware"
	"github.com/majlis/majlis-api/internal/pkg/response"
)

// Handler handles feed HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates feed handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns the caller's feed
// GET /feed
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	topics, err := h.service.ListFeed(r.Context(), userID, limit)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, topics)
}

// Follow starts following a user
// POST /feed/follow/{id}
func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	followeeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	if err := h.service.Follow(r.Context(), userID, followeeID); err != nil {
		switch err {
		case ErrSelfFollow:
			response.BadRequest(w, "Cannot follow yourself")
		case ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"message": "Following"})
}

// Unfollow stops following a user
// DELETE /feed/follow/{id}
func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	followeeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	if err := h.service.Unfollow(r.Context(), userID, followeeID); err != nil {
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

// Followers returns a user's follower count
// GET /feed/followers/{id}
func (h *Handler) Followers(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	count, err := h.service.Followers(r.Context(), userID)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]int{"followers": count})
}
