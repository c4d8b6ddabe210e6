package moderation

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/majlis/majlis-api/internal/domain/permission"
)

// Routes returns moderation routes mounted under /moderation. Every
// topic action is gated by its own permission kind; the report queue
// requires staff.
func (h *Handler) Routes(authMiddleware, staffMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Get("/actions", h.Actions)

	r.Route("/topics/{id}", func(r chi.Router) {
		r.With(permission.Require(h.resolver, permission.KindPinTopic)).Post("/pin", h.Pin)
		r.With(permission.Require(h.resolver, permission.KindFeatureTopic)).Post("/feature", h.Feature)
		r.With(permission.Require(h.resolver, permission.KindHideTopic)).Post("/hide", h.Hide)
		r.With(permission.Require(h.resolver, permission.KindMoveTopic)).Post("/move", h.Move)
		r.With(permission.Require(h.resolver, permission.KindUpdateTopic)).Patch("/", h.Update)
		r.With(permission.Require(h.resolver, permission.KindDeleteTopic)).Delete("/", h.Delete)
	})

	r.Group(func(r chi.Router) {
		r.Use(staffMiddleware)
		r.Get("/reports", h.ListReports)
		r.Post("/reports/{id}/resolve", h.ResolveReport)
	})

	return r
}

// ReportRoutes returns the public report filing route, mounted under
// /reports for any authenticated user.
func (h *Handler) ReportRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.CreateReport)
	})

	return r
}
