package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/majlis/majlis-api/internal/pkg/response"
	"github.com/majlis/majlis-api/internal/pkg/validator"
)

// Handler handles category HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates category handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns all categories
// GET /categories
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, categories)
}

// Get returns a single category
// GET /categories/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid category ID")
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		if err == ErrCategoryNotFound {
			response.NotFound(w, "Category not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, c)
}

// Create adds a category (admin)
// POST /categories
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	c, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case ErrSlugTaken:
			response.Conflict(w, "Category slug already in use")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, c)
}

// Update edits a category (admin)
// PATCH /categories/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid category ID")
		return
	}

	var req UpdateCategoryRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	c, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case ErrCategoryNotFound:
			response.NotFound(w, "Category not found")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, c)
}

// Delete removes a category (admin)
// DELETE /categories/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid category ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch err {
		case ErrCategoryNotFound:
			response.NotFound(w, "Category not found")
		case ErrCategoryNotEmpty:
			response.Conflict(w, "Category still contains topics")
		default:
			response.InternalError(w)
		}
		return
	}

	response.NoContent(w)
}
