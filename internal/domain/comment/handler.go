package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/majlis/majlis-api/internal/middleware"
	"github.com/majlis/majlis-api/internal/pkg/response"
	"github.com/majlis/majlis-api/internal/pkg/validator"
)

// Handler handles comment HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates comment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListByTopic returns published comments for a topic
// GET /topics/{id}/comments
func (h *Handler) ListByTopic(w http.ResponseWriter, r *http.Request) {
	topicID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid topic ID")
		return
	}

	comments, err := h.service.ListByTopic(r.Context(), topicID)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, comments)
}

// Create adds a comment to a topic
// POST /topics/{id}/comments
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	topicID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid topic ID")
		return
	}

	var req CreateCommentRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	c, err := h.service.Create(r.Context(), topicID, userID, &req)
	if err != nil {
		switch err {
		case ErrTopicNotFound:
			response.NotFound(w, "Topic not found")
		case ErrTopicLocked:
			response.Forbidden(w, "Topic is locked")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, c)
}

// Delete removes the caller's comment
// DELETE /comments/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid comment ID")
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		switch err {
		case ErrCommentNotFound:
			response.NotFound(w, "Comment not found")
		case ErrNotAuthor:
			response.Forbidden(w, "Only the author may delete this comment")
		case ErrEditWindowClosed:
			response.Forbidden(w, "The edit window has closed")
		default:
			response.InternalError(w)
		}
		return
	}

	response.NoContent(w)
}

// Hide archives a comment
// POST /comments/{id}/hide
func (h *Handler) Hide(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid comment ID")
		return
	}

	if err := h.service.Hide(r.Context(), id); err != nil {
		if err == ErrCommentNotFound {
			response.NotFound(w, "Comment not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"message": "Comment hidden"})
}

// Like increments the comment like counter
// POST /comments/{id}/like
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid comment ID")
		return
	}

	if err := h.service.Like(r.Context(), id); err != nil {
		if err == ErrCommentNotFound {
			response.NotFound(w, "Comment not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"message": "Liked"})
}
