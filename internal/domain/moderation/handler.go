package moderation

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/majlis/majlis-api/internal/domain/permission"
	"github.com/majlis/majlis-api/internal/domain/topic"
	"github.com/majlis/majlis-api/internal/middleware"
	"github.com/majlis/majlis-api/internal/pkg/response"
	"github.com/majlis/majlis-api/internal/pkg/validator"
)

// Handler handles moderation HTTP requests
type Handler struct {
	executor *Executor
	reports  *ReportService
	resolver *permission.Resolver
}

// NewHandler creates moderation handler
func NewHandler(executor *Executor, reports *ReportService, resolver *permission.Resolver) *Handler {
	return &Handler{executor: executor, reports: reports, resolver: resolver}
}

// Actions returns the moderation controls visible to the caller
// GET /moderation/actions
func (h *Handler) Actions(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	perms, err := h.resolver.Permissions(r.Context(), userID)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, VisibleActions(perms))
}

// Pin sets the pinned flag on a topic
// POST /moderation/topics/{id}/pin
func (h *Handler) Pin(w http.ResponseWriter, r *http.Request) {
	topicID, ok := h.topicID(w, r)
	if !ok {
		return
	}

	var req PinRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	err := h.executor.PinTopic(r.Context(), middleware.GetUserID(r.Context()), topicID, *req.Pinned)
	h.respond(w, err)
}

// Feature sets the featured flag on a topic
// POST /moderation/topics/{id}/feature
func (h *Handler) Feature(w http.ResponseWriter, r *http.Request) {
	topicID, ok := h.topicID(w, r)
	if !ok {
		return
	}

	var req FeatureRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	err := h.executor.FeatureTopic(r.Context(), middleware.GetUserID(r.Context()), topicID, *req.Featured)
	h.respond(w, err)
}

// Hide archives a topic
// POST /moderation/topics/{id}/hide
func (h *Handler) Hide(w http.ResponseWriter, r *http.Request) {
	topicID, ok := h.topicID(w, r)
	if !ok {
		return
	}

	err := h.executor.HideTopic(r.Context(), middleware.GetUserID(r.Context()), topicID)
	h.respond(w, err)
}

// Move reassigns a topic to a category
// POST /moderation/topics/{id}/move
func (h *Handler) Move(w http.ResponseWriter, r *http.Request) {
	topicID, ok := h.topicID(w, r)
	if !ok {
		return
	}

	var req MoveRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	err := h.executor.MoveTopic(r.Context(), middleware.GetUserID(r.Context()), topicID, req.CategoryID)
	h.respond(w, err)
}

// Update edits a topic as a moderator
// PATCH /moderation/topics/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	topicID, ok := h.topicID(w, r)
	if !ok {
		return
	}

	var req topic.UpdateTopicRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	t, err := h.executor.UpdateTopic(r.Context(), middleware.GetUserID(r.Context()), topicID, &req)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	response.OK(w, t)
}

// Delete permanently removes a topic
// DELETE /moderation/topics/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	topicID, ok := h.topicID(w, r)
	if !ok {
		return
	}

	if err := h.executor.DeleteTopic(r.Context(), middleware.GetUserID(r.Context()), topicID); err != nil {
		h.respondErr(w, err)
		return
	}

	response.NoContent(w)
}

// CreateReport files a report against a topic or comment
// POST /reports
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateReportRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	report, err := h.reports.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case ErrInvalidTarget:
			response.BadRequest(w, "Report must target exactly one of topic or comment")
		case ErrTopicNotFound:
			response.NotFound(w, "Topic not found")
		case ErrCommentNotFound:
			response.NotFound(w, "Comment not found")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, report)
}

// ListReports returns the open report queue
// GET /moderation/reports
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}

	reports, total, err := h.reports.ListOpen(r.Context(), limit, offset)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.WithMeta(w, reports, response.Meta{Total: total, Limit: limit, Offset: offset})
}

// ResolveReport closes an open report
// POST /moderation/reports/{id}/resolve
func (h *Handler) ResolveReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	if err := h.reports.Resolve(r.Context(), id, middleware.GetUserID(r.Context())); err != nil {
		switch err {
		case ErrReportNotFound:
			response.NotFound(w, "Report not found")
		case ErrReportResolved:
			response.Conflict(w, "Report already resolved")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"message": "Report resolved"})
}

func (h *Handler) topicID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid topic ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) respond(w http.ResponseWriter, err error) {
	if err != nil {
		h.respondErr(w, err)
		return
	}
	response.OK(w, map[string]string{"message": "OK"})
}

func (h *Handler) respondErr(w http.ResponseWriter, err error) {
	switch err {
	case ErrTopicNotFound:
		response.NotFound(w, "Topic not found")
	case ErrCategoryNotFound:
		response.BadRequest(w, "Category does not exist")
	default:
		response.InternalError(w)
	}
}
