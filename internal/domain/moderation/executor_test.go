package moderation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/majlis/majlis-api/internal/domain/topic"
	"github.com/majlis/majlis-api/internal/pkg/cache"
)

type fakeTopicRepo struct {
	topics map[uuid.UUID]*topic.Topic

	setPinnedCalls int
	setStatusCalls int
}

func newFakeTopicRepo(topics ...*topic.Topic) *fakeTopicRepo {
	m := make(map[uuid.UUID]*topic.Topic)
	for _, t := range topics {
		m[t.ID] = t
	}
	return &fakeTopicRepo{topics: m}
}

func (f *fakeTopicRepo) Create(ctx context.Context, t *topic.Topic) error {
	f.topics[t.ID] = t
	return nil
}

func (f *fakeTopicRepo) GetByID(ctx context.Context, id uuid.UUID) (*topic.Topic, error) {
	return f.topics[id], nil
}

func (f *fakeTopicRepo) Update(ctx context.Context, t *topic.Topic) error {
	if _, ok := f.topics[t.ID]; !ok {
		return topic.ErrTopicNotFound
	}
	f.topics[t.ID] = t
	return nil
}

func (f *fakeTopicRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.topics[id]; !ok {
		return topic.ErrTopicNotFound
	}
	delete(f.topics, id)
	return nil
}

func (f *fakeTopicRepo) ListPublished(ctx context.Context, filter *topic.ListFilter) ([]*topic.Topic, error) {
	var out []*topic.Topic
	for _, t := range f.topics {
		if t.Status == topic.StatusPublished {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTopicRepo) CountPublished(ctx context.Context, filter *topic.ListFilter) (int, error) {
	list, _ := f.ListPublished(ctx, filter)
	return len(list), nil
}

func (f *fakeTopicRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	count := 0
	for _, t := range f.topics {
		if t.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (f *fakeTopicRepo) ListPublishedByAuthors(ctx context.Context, authorIDs []uuid.UUID, limit int) ([]*topic.Topic, error) {
	return nil, nil
}

func (f *fakeTopicRepo) SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error {
	t, ok := f.topics[id]
	if !ok {
		return topic.ErrTopicNotFound
	}
	f.setPinnedCalls++
	t.IsPinned = pinned
	return nil
}

func (f *fakeTopicRepo) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	t, ok := f.topics[id]
	if !ok {
		return topic.ErrTopicNotFound
	}
	t.IsFeatured = featured
	return nil
}

func (f *fakeTopicRepo) SetStatus(ctx context.Context, id uuid.UUID, status topic.Status) error {
	t, ok := f.topics[id]
	if !ok {
		return topic.ErrTopicNotFound
	}
	f.setStatusCalls++
	t.Status = status
	return nil
}

func (f *fakeTopicRepo) SetCategory(ctx context.Context, id uuid.UUID, categoryID uuid.UUID) error {
	t, ok := f.topics[id]
	if !ok {
		return topic.ErrTopicNotFound
	}
	t.CategoryID = categoryID
	return nil
}

func (f *fakeTopicRepo) IncrementViews(ctx context.Context, id uuid.UUID) error   { return nil }
func (f *fakeTopicRepo) IncrementLikes(ctx context.Context, id uuid.UUID) error   { return nil }
func (f *fakeTopicRepo) IncrementReplies(ctx context.Context, id uuid.UUID, delta int) error {
	return nil
}

type fakeCategoryChecker struct {
	existing map[uuid.UUID]bool
}

func (f *fakeCategoryChecker) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return f.existing[id], nil
}

func publishedTopic(categoryID uuid.UUID) *topic.Topic {
	now := time.Now()
	return &topic.Topic{
		ID:         uuid.New(),
		Title:      "test topic",
		Content:    "test content",
		AuthorID:   uuid.New(),
		CategoryID: categoryID,
		Status:     topic.StatusPublished,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func newTestExecutor(t *testing.T, repo *fakeTopicRepo, categories *fakeCategoryChecker) (*Executor, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewExecutor(repo, categories, cache.New(client)), client
}

func TestPinTopicIdempotent(t *testing.T) {
	catID := uuid.New()
	tp := publishedTopic(catID)
	repo := newFakeTopicRepo(tp)
	e, _ := newTestExecutor(t, repo, &fakeCategoryChecker{})

	actor := uuid.New()
	for i := 0; i < 3; i++ {
		if err := e.PinTopic(context.Background(), actor, tp.ID, true); err != nil {
			t.Fatalf("PinTopic call %d: %v", i+1, err)
		}
	}
	if !tp.IsPinned {
		t.Error("topic not pinned")
	}

	if err := e.PinTopic(context.Background(), actor, tp.ID, false); err != nil {
		t.Fatalf("unpin: %v", err)
	}
	if tp.IsPinned {
		t.Error("topic still pinned after unpin")
	}
}

func TestFeatureTopicIdempotent(t *testing.T) {
	tp := publishedTopic(uuid.New())
	repo := newFakeTopicRepo(tp)
	e, _ := newTestExecutor(t, repo, &fakeCategoryChecker{})

	actor := uuid.New()
	for i := 0; i < 2; i++ {
		if err := e.FeatureTopic(context.Background(), actor, tp.ID, true); err != nil {
			t.Fatalf("FeatureTopic call %d: %v", i+1, err)
		}
	}
	if !tp.IsFeatured {
		t.Error("topic not featured")
	}
}

func TestHideTopicArchives(t *testing.T) {
	tp := publishedTopic(uuid.New())
	repo := newFakeTopicRepo(tp)
	e, _ := newTestExecutor(t, repo, &fakeCategoryChecker{})

	if err := e.HideTopic(context.Background(), uuid.New(), tp.ID); err != nil {
		t.Fatalf("HideTopic: %v", err)
	}
	if tp.Status != topic.StatusArchived {
		t.Errorf("status %q, want archived", tp.Status)
	}

	listed, _ := repo.ListPublished(context.Background(), nil)
	for _, l := range listed {
		if l.ID == tp.ID {
			t.Error("hidden topic still in published listing")
		}
	}
}

func TestHideTopicOneWay(t *testing.T) {
	tp := publishedTopic(uuid.New())
	tp.Status = topic.StatusArchived
	repo := newFakeTopicRepo(tp)
	e, _ := newTestExecutor(t, repo, &fakeCategoryChecker{})

	if err := e.HideTopic(context.Background(), uuid.New(), tp.ID); err != nil {
		t.Fatalf("HideTopic on archived topic: %v", err)
	}
	if tp.Status != topic.StatusArchived {
		t.Errorf("status %q, want archived", tp.Status)
	}
	if repo.setStatusCalls != 0 {
		t.Error("hiding an archived topic should not write")
	}
}

func TestMoveTopic(t *testing.T) {
	oldCat := uuid.New()
	newCat := uuid.New()
	tp := publishedTopic(oldCat)
	repo := newFakeTopicRepo(tp)
	e, _ := newTestExecutor(t, repo, &fakeCategoryChecker{existing: map[uuid.UUID]bool{newCat: true}})

	if err := e.MoveTopic(context.Background(), uuid.New(), tp.ID, newCat); err != nil {
		t.Fatalf("MoveTopic: %v", err)
	}
	if tp.CategoryID != newCat {
		t.Errorf("category %s, want %s", tp.CategoryID, newCat)
	}
}

func TestMoveTopicSameCategorySucceeds(t *testing.T) {
	catID := uuid.New()
	tp := publishedTopic(catID)
	repo := newFakeTopicRepo(tp)
	e, _ := newTestExecutor(t, repo, &fakeCategoryChecker{existing: map[uuid.UUID]bool{catID: true}})

	if err := e.MoveTopic(context.Background(), uuid.New(), tp.ID, catID); err != nil {
		t.Fatalf("moving to the same category: %v", err)
	}
	if tp.CategoryID != catID {
		t.Errorf("category changed to %s", tp.CategoryID)
	}
}

func TestMoveTopicUnknownCategory(t *testing.T) {
	tp := publishedTopic(uuid.New())
	repo := newFakeTopicRepo(tp)
	e, _ := newTestExecutor(t, repo, &fakeCategoryChecker{})

	err := e.MoveTopic(context.Background(), uuid.New(), tp.ID, uuid.New())
	if err != ErrCategoryNotFound {
		t.Errorf("got %v, want ErrCategoryNotFound", err)
	}
}

func TestDeleteTopicPermanent(t *testing.T) {
	tp := publishedTopic(uuid.New())
	repo := newFakeTopicRepo(tp)
	e, _ := newTestExecutor(t, repo, &fakeCategoryChecker{})

	if err := e.DeleteTopic(context.Background(), uuid.New(), tp.ID); err != nil {
		t.Fatalf("DeleteTopic: %v", err)
	}

	got, _ := repo.GetByID(context.Background(), tp.ID)
	if got != nil {
		t.Error("topic still present after delete")
	}

	err := e.DeleteTopic(context.Background(), uuid.New(), tp.ID)
	if err != ErrTopicNotFound {
		t.Errorf("second delete: got %v, want ErrTopicNotFound", err)
	}
}

func TestActionsOnMissingTopic(t *testing.T) {
	repo := newFakeTopicRepo()
	e, _ := newTestExecutor(t, repo, &fakeCategoryChecker{})

	missing := uuid.New()
	actor := uuid.New()

	if err := e.PinTopic(context.Background(), actor, missing, true); err != ErrTopicNotFound {
		t.Errorf("PinTopic: got %v, want ErrTopicNotFound", err)
	}
	if err := e.HideTopic(context.Background(), actor, missing); err != ErrTopicNotFound {
		t.Errorf("HideTopic: got %v, want ErrTopicNotFound", err)
	}
	if err := e.MoveTopic(context.Background(), actor, missing, uuid.New()); err != ErrTopicNotFound {
		t.Errorf("MoveTopic: got %v, want ErrTopicNotFound", err)
	}
}

func TestActionsInvalidateTopicCache(t *testing.T) {
	tp := publishedTopic(uuid.New())
	repo := newFakeTopicRepo(tp)
	e, client := newTestExecutor(t, repo, &fakeCategoryChecker{})

	ctx := context.Background()
	if err := client.Set(ctx, topic.CachePrefix+"list:all:50:0", `{"topics":[]}`, 0).Err(); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	if err := e.PinTopic(ctx, uuid.New(), tp.ID, true); err != nil {
		t.Fatalf("PinTopic: %v", err)
	}

	if err := client.Get(ctx, topic.CachePrefix+"list:all:50:0").Err(); err != redis.Nil {
		t.Errorf("cached listing survived a moderation action: %v", err)
	}
}
