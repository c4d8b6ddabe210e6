package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/majlis/majlis-api/internal/middleware"
	"github.com/majlis/majlis-api/internal/pkg/response"
	"github.com/majlis/majlis-api/internal/pkg/validator"
)

const maxAvatarSize = 5 << 20 // 5 MB

// Handler handles profile HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates profile handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get returns a public profile
// GET /profiles/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	p, err := h.service.GetByUserID(r.Context(), userID)
	if err != nil {
		if err == ErrProfileNotFound {
			response.NotFound(w, "Profile not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, p)
}

// GetMe returns the caller's profile
// GET /profiles/me
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	p, err := h.service.GetByUserID(r.Context(), userID)
	if err != nil {
		if err == ErrProfileNotFound {
			response.NotFound(w, "Profile not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, p)
}

// Update edits the caller's profile
// PATCH /profiles/me
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req UpdateProfileRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	p, err := h.service.UpdateOwn(r.Context(), userID, &req)
	if err != nil {
		if err == ErrProfileNotFound {
			response.NotFound(w, "Profile not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, p)
}

// UploadAvatar replaces the caller's avatar
// POST /profiles/me/avatar
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		response.BadRequest(w, "Missing avatar file")
		return
	}
	defer file.Close()

	p, err := h.service.UploadAvatar(r.Context(), userID, file)
	if err != nil {
		switch err {
		case ErrProfileNotFound:
			response.NotFound(w, "Profile not found")
		case ErrInvalidImage:
			response.BadRequest(w, "Unsupported or corrupt image")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, p)
}
