package moderation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/majlis/majlis-api/internal/domain/comment"
)

type fakeReportRepo struct {
	reports map[uuid.UUID]*Report
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[uuid.UUID]*Report)}
}

func (f *fakeReportRepo) Create(ctx context.Context, r *Report) error {
	f.reports[r.ID] = r
	return nil
}

func (f *fakeReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	return f.reports[id], nil
}

func (f *fakeReportRepo) List(ctx context.Context, status ReportStatus, limit, offset int) ([]*Report, error) {
	var out []*Report
	for _, r := range f.reports {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) Count(ctx context.Context, status ReportStatus) (int, error) {
	list, _ := f.List(ctx, status, 0, 0)
	return len(list), nil
}

func (f *fakeReportRepo) Resolve(ctx context.Context, id, resolverID uuid.UUID) error {
	r, ok := f.reports[id]
	if !ok || r.Status != ReportOpen {
		return ErrReportNotFound
	}
	now := time.Now()
	r.Status = ReportResolved
	r.ResolvedBy = uuid.NullUUID{UUID: resolverID, Valid: true}
	r.ResolvedAt = &now
	return nil
}

type fakeCommentRepo struct {
	comments map[uuid.UUID]*comment.Comment
}

func (f *fakeCommentRepo) Create(ctx context.Context, c *comment.Comment) error { return nil }
func (f *fakeCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	return f.comments[id], nil
}
func (f *fakeCommentRepo) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*comment.Comment, error) {
	return nil, nil
}
func (f *fakeCommentRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeCommentRepo) SetStatus(ctx context.Context, id uuid.UUID, status comment.Status) error {
	return nil
}
func (f *fakeCommentRepo) IncrementLikes(ctx context.Context, id uuid.UUID) error { return nil }

func TestReportTopic(t *testing.T) {
	tp := publishedTopic(uuid.New())
	svc := NewReportService(newFakeReportRepo(), newFakeTopicRepo(tp), &fakeCommentRepo{})

	r, err := svc.Create(context.Background(), uuid.New(), &CreateReportRequest{
		TopicID: &tp.ID,
		Reason:  "spam",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.Status != ReportOpen {
		t.Errorf("status %q, want open", r.Status)
	}
	if !r.TopicID.Valid || r.TopicID.UUID != tp.ID {
		t.Error("report not linked to topic")
	}
}

func TestReportWithoutTarget(t *testing.T) {
	svc := NewReportService(newFakeReportRepo(), newFakeTopicRepo(), &fakeCommentRepo{})

	_, err := svc.Create(context.Background(), uuid.New(), &CreateReportRequest{Reason: "spam"})
	if err != ErrInvalidTarget {
		t.Errorf("got %v, want ErrInvalidTarget", err)
	}
}

func TestReportBothTargets(t *testing.T) {
	svc := NewReportService(newFakeReportRepo(), newFakeTopicRepo(), &fakeCommentRepo{})

	topicID := uuid.New()
	commentID := uuid.New()
	_, err := svc.Create(context.Background(), uuid.New(), &CreateReportRequest{
		TopicID:   &topicID,
		CommentID: &commentID,
		Reason:    "spam",
	})
	if err != ErrInvalidTarget {
		t.Errorf("got %v, want ErrInvalidTarget", err)
	}
}

func TestReportUnknownTopic(t *testing.T) {
	svc := NewReportService(newFakeReportRepo(), newFakeTopicRepo(), &fakeCommentRepo{})

	missing := uuid.New()
	_, err := svc.Create(context.Background(), uuid.New(), &CreateReportRequest{
		TopicID: &missing,
		Reason:  "spam",
	})
	if err != ErrTopicNotFound {
		t.Errorf("got %v, want ErrTopicNotFound", err)
	}
}

func TestResolveReport(t *testing.T) {
	tp := publishedTopic(uuid.New())
	repo := newFakeReportRepo()
	svc := NewReportService(repo, newFakeTopicRepo(tp), &fakeCommentRepo{})

	ctx := context.Background()
	r, err := svc.Create(ctx, uuid.New(), &CreateReportRequest{TopicID: &tp.ID, Reason: "abuse"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	resolver := uuid.New()
	if err := svc.Resolve(ctx, r.ID, resolver); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Status != ReportResolved {
		t.Errorf("status %q, want resolved", r.Status)
	}

	if err := svc.Resolve(ctx, r.ID, resolver); err != ErrReportResolved {
		t.Errorf("second resolve: got %v, want ErrReportResolved", err)
	}

	open, total, err := svc.ListOpen(ctx, 50, 0)
	if err != nil {
		t.Fatalf("ListOpen: %v", err)
	}
	if len(open) != 0 || total != 0 {
		t.Errorf("resolved report still in open queue (%d, %d)", len(open), total)
	}
}
