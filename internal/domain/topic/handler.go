package topic

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/majlis/majlis-api/internal/middleware"
	"github.com/majlis/majlis-api/internal/pkg/response"
	"github.com/majlis/majlis-api/internal/pkg/validator"
)

// Handler handles topic HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates topic handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns published topics
// GET /topics
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := &ListFilter{Limit: 50}

	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid category ID")
			return
		}
		filter.CategoryID = id
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

	topics, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.WithMeta(w, topics, response.Meta{
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// Get returns a single topic
// GET /topics/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid topic ID")
		return
	}

	t, err := h.service.Get(r.Context(), id)
	if err != nil {
		if err == ErrTopicNotFound {
			response.NotFound(w, "Topic not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, t)
}

// Create publishes a new topic
// POST /topics
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateTopicRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	t, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case ErrCategoryNotFound:
			response.BadRequest(w, "Category does not exist")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, t)
}

// Update edits the caller's topic
// PATCH /topics/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid topic ID")
		return
	}

	var req UpdateTopicRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	t, err := h.service.Update(r.Context(), userID, id, &req)
	if err != nil {
		switch err {
		case ErrTopicNotFound:
			response.NotFound(w, "Topic not found")
		case ErrNotAuthor:
			response.Forbidden(w, "Only the author may edit this topic")
		case ErrEditWindowClosed:
			response.Forbidden(w, "The edit window has closed")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, t)
}

// Delete removes the caller's topic
// DELETE /topics/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid topic ID")
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		switch err {
		case ErrTopicNotFound:
			response.NotFound(w, "Topic not found")
		case ErrNotAuthor:
			response.Forbidden(w, "Only the author may delete this topic")
		case ErrEditWindowClosed:
			response.Forbidden(w, "The edit window has closed")
		default:
			response.InternalError(w)
		}
		return
	}

	response.NoContent(w)
}

// Like increments the topic like counter
// POST /topics/{id}/like
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid topic ID")
		return
	}

	if err := h.service.Like(r.Context(), id); err != nil {
		if err == ErrTopicNotFound {
			response.NotFound(w, "Topic not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"message": "Liked"})
}
