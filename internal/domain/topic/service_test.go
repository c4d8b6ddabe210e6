package topic

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/majlis/majlis-api/internal/pkg/cache"
)

type stubRepo struct {
	topics map[uuid.UUID]*Topic

	listCalls int
}

func newStubRepo(topics ...*Topic) *stubRepo {
	m := make(map[uuid.UUID]*Topic)
	for _, t := range topics {
		m[t.ID] = t
	}
	return &stubRepo{topics: m}
}

func (s *stubRepo) Create(ctx context.Context, t *Topic) error {
	s.topics[t.ID] = t
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id uuid.UUID) (*Topic, error) {
	return s.topics[id], nil
}

func (s *stubRepo) Update(ctx context.Context, t *Topic) error {
	if _, ok := s.topics[t.ID]; !ok {
		return ErrTopicNotFound
	}
	s.topics[t.ID] = t
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.topics[id]; !ok {
		return ErrTopicNotFound
	}
	delete(s.topics, id)
	return nil
}

func (s *stubRepo) ListPublished(ctx context.Context, filter *ListFilter) ([]*Topic, error) {
	s.listCalls++
	var out []*Topic
	for _, t := range s.topics {
		if t.Status == StatusPublished {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *stubRepo) CountPublished(ctx context.Context, filter *ListFilter) (int, error) {
	list, _ := s.ListPublished(ctx, filter)
	s.listCalls--
	return len(list), nil
}

func (s *stubRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	return 0, nil
}

func (s *stubRepo) ListPublishedByAuthors(ctx context.Context, authorIDs []uuid.UUID, limit int) ([]*Topic, error) {
	return nil, nil
}

func (s *stubRepo) SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error     { return nil }
func (s *stubRepo) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error { return nil }
func (s *stubRepo) SetStatus(ctx context.Context, id uuid.UUID, status Status) error   { return nil }
func (s *stubRepo) SetCategory(ctx context.Context, id uuid.UUID, categoryID uuid.UUID) error {
	return nil
}
func (s *stubRepo) IncrementViews(ctx context.Context, id uuid.UUID) error              { return nil }
func (s *stubRepo) IncrementLikes(ctx context.Context, id uuid.UUID) error              { return nil }
func (s *stubRepo) IncrementReplies(ctx context.Context, id uuid.UUID, delta int) error { return nil }

type allowAllCategories struct{}

func (allowAllCategories) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return true, nil
}

type noCategories struct{}

func (noCategories) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return false, nil
}

func testTopic(authorID uuid.UUID, createdAt time.Time) *Topic {
	return &Topic{
		ID:         uuid.New(),
		Title:      "test title",
		Content:    "test content body",
		AuthorID:   authorID,
		CategoryID: uuid.New(),
		Status:     StatusPublished,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func newTestService(t *testing.T, repo Repository) *Service {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewService(repo, allowAllCategories{}, cache.New(client), 30*time.Minute, time.Minute)
}

func TestCreateUnknownCategory(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, noCategories{}, cache.New(nil), 30*time.Minute, time.Minute)

	_, err := svc.Create(context.Background(), uuid.New(), &CreateTopicRequest{
		Title:      "test title",
		Content:    "test content body",
		CategoryID: uuid.New(),
	})
	if err != ErrCategoryNotFound {
		t.Errorf("got %v, want ErrCategoryNotFound", err)
	}
}

func TestUpdateByNonAuthor(t *testing.T) {
	author := uuid.New()
	tp := testTopic(author, time.Now())
	svc := newTestService(t, newStubRepo(tp))

	title := "edited"
	_, err := svc.Update(context.Background(), uuid.New(), tp.ID, &UpdateTopicRequest{Title: &title})
	if err != ErrNotAuthor {
		t.Errorf("got %v, want ErrNotAuthor", err)
	}
}

func TestUpdateAfterWindow(t *testing.T) {
	author := uuid.New()
	tp := testTopic(author, time.Now().Add(-time.Hour))
	svc := newTestService(t, newStubRepo(tp))

	title := "edited"
	_, err := svc.Update(context.Background(), author, tp.ID, &UpdateTopicRequest{Title: &title})
	if err != ErrEditWindowClosed {
		t.Errorf("got %v, want ErrEditWindowClosed", err)
	}
}

func TestUpdateArchivedTopic(t *testing.T) {
	author := uuid.New()
	tp := testTopic(author, time.Now())
	tp.Status = StatusArchived
	svc := newTestService(t, newStubRepo(tp))

	title := "edited"
	_, err := svc.Update(context.Background(), author, tp.ID, &UpdateTopicRequest{Title: &title})
	if err != ErrEditWindowClosed {
		t.Errorf("got %v, want ErrEditWindowClosed", err)
	}
}

func TestUpdateWithinWindow(t *testing.T) {
	author := uuid.New()
	tp := testTopic(author, time.Now().Add(-5*time.Minute))
	svc := newTestService(t, newStubRepo(tp))

	title := "edited title"
	got, err := svc.Update(context.Background(), author, tp.ID, &UpdateTopicRequest{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Title != "edited title" {
		t.Errorf("title %q, want %q", got.Title, "edited title")
	}
}

func TestDeleteByAuthorWithinWindow(t *testing.T) {
	author := uuid.New()
	tp := testTopic(author, time.Now())
	repo := newStubRepo(tp)
	svc := newTestService(t, repo)

	if err := svc.Delete(context.Background(), author, tp.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := repo.topics[tp.ID]; ok {
		t.Error("topic still present after delete")
	}
}

func TestListServesFromCache(t *testing.T) {
	tp := testTopic(uuid.New(), time.Now())
	repo := newStubRepo(tp)
	svc := newTestService(t, repo)

	ctx := context.Background()
	if _, _, err := svc.List(ctx, nil); err != nil {
		t.Fatalf("first List: %v", err)
	}
	if _, _, err := svc.List(ctx, nil); err != nil {
		t.Fatalf("second List: %v", err)
	}

	if repo.listCalls != 1 {
		t.Errorf("repository queried %d times, want 1", repo.listCalls)
	}
}

func TestCreateInvalidatesListings(t *testing.T) {
	tp := testTopic(uuid.New(), time.Now())
	repo := newStubRepo(tp)
	svc := newTestService(t, repo)

	ctx := context.Background()
	if _, _, err := svc.List(ctx, nil); err != nil {
		t.Fatalf("List: %v", err)
	}

	if _, err := svc.Create(ctx, uuid.New(), &CreateTopicRequest{
		Title:      "another title",
		Content:    "another content body",
		CategoryID: uuid.New(),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	topics, _, err := svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("List after create: %v", err)
	}
	if len(topics) != 2 {
		t.Errorf("got %d topics after create, want 2 (stale cache?)", len(topics))
	}
}

func TestEditable(t *testing.T) {
	now := time.Now()
	window := 30 * time.Minute

	fresh := testTopic(uuid.New(), now.Add(-10*time.Minute))
	if !fresh.Editable(window, now) {
		t.Error("fresh topic not editable")
	}

	stale := testTopic(uuid.New(), now.Add(-time.Hour))
	if stale.Editable(window, now) {
		t.Error("stale topic still editable")
	}

	archived := testTopic(uuid.New(), now)
	archived.Status = StatusArchived
	if archived.Editable(window, now) {
		t.Error("archived topic editable")
	}
}
