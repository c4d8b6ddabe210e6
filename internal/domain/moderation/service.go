package moderation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/majlis/majlis-api/internal/domain/comment"
	"github.com/majlis/majlis-api/internal/domain/topic"
)

// ErrInvalidTarget means the report names neither or both of a topic
// and a comment.
var ErrInvalidTarget = errors.New("report must target exactly one of topic or comment")

// ReportService handles the report queue
type ReportService struct {
	repo     ReportRepository
	topics   topic.Repository
	comments comment.Repository
}

// NewReportService creates report service
func NewReportService(repo ReportRepository, topics topic.Repository, comments comment.Repository) *ReportService {
	return &ReportService{repo: repo, topics: topics, comments: comments}
}

// Create files a report against exactly one topic or comment.
func (s *ReportService) Create(ctx context.Context, reporterID uuid.UUID, req *CreateReportRequest) (*Report, error) {
	if (req.TopicID == nil) == (req.CommentID == nil) {
		return nil, ErrInvalidTarget
	}

	r := &Report{
		ID:         uuid.New(),
		ReporterID: reporterID,
		Reason:     ReportReason(req.Reason),
		Detail:     req.Detail,
		Status:     ReportOpen,
		CreatedAt:  time.Now(),
	}

	if req.TopicID != nil {
		t, err := s.topics.GetByID(ctx, *req.TopicID)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, ErrTopicNotFound
		}
		r.TopicID = uuid.NullUUID{UUID: *req.TopicID, Valid: true}
	} else {
		c, err := s.comments.GetByID(ctx, *req.CommentID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, ErrCommentNotFound
		}
		r.CommentID = uuid.NullUUID{UUID: *req.CommentID, Valid: true}
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListOpen returns the open report queue, oldest first.
func (s *ReportService) ListOpen(ctx context.Context, limit, offset int) ([]*Report, int, error) {
	reports, err := s.repo.List(ctx, ReportOpen, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx, ReportOpen)
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// Resolve closes an open report.
func (s *ReportService) Resolve(ctx context.Context, id, resolverID uuid.UUID) error {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return ErrReportNotFound
	}
	if r.Status == ReportResolved {
		return ErrReportResolved
	}

	return s.repo.Resolve(ctx, id, resolverID)
}
