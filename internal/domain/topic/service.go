package topic

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/majlis/majlis-api/internal/pkg/cache"
)

// CachePrefix scopes every cached topic listing. Any persisted topic
// mutation must invalidate this prefix so dependent views refetch.
const CachePrefix = "topics:"

// CategoryChecker validates category references before they are written
type CategoryChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service handles topic business logic
type Service struct {
	repo       Repository
	categories CategoryChecker
	cache      *cache.Cache
	editWindow time.Duration
	cacheTTL   time.Duration
}

// NewService creates topic service
func NewService(repo Repository, categories CategoryChecker, c *cache.Cache, editWindow, cacheTTL time.Duration) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		cache:      c,
		editWindow: editWindow,
		cacheTTL:   cacheTTL,
	}
}

// Create publishes a new topic
func (s *Service) Create(ctx context.Context, authorID uuid.UUID, req *CreateTopicRequest) (*Topic, error) {
	exists, err := s.categories.Exists(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCategoryNotFound
	}

	now := time.Now()
	t := &Topic{
		ID:         uuid.New(),
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   authorID,
		CategoryID: req.CategoryID,
		Status:     StatusPublished,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)
	return t, nil
}

// Get returns a topic and counts the view
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Topic, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTopicNotFound
	}

	if err := s.repo.IncrementViews(ctx, id); err != nil {
		log.Warn().Err(err).Str("topic_id", id.String()).Msg("Failed to increment view count")
	} else {
		t.ViewCount++
	}

	return t, nil
}

// GetForModeration returns a topic without counting a view
func (s *Service) GetForModeration(ctx context.Context, id uuid.UUID) (*Topic, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTopicNotFound
	}
	return t, nil
}

// List returns published topics, pinned first, through the read cache
func (s *Service) List(ctx context.Context, filter *ListFilter) ([]*Topic, int, error) {
	key := s.listKey(filter)

	var cached listPage
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached.Topics, cached.Total, nil
	}

	topics, err := s.repo.ListPublished(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountPublished(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	if err := s.cache.SetJSON(ctx, key, listPage{Topics: topics, Total: total}, s.cacheTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to cache topic listing")
	}

	return topics, total, nil
}

// Update applies an author edit within the edit window
func (s *Service) Update(ctx context.Context, userID, topicID uuid.UUID, req *UpdateTopicRequest) (*Topic, error) {
	t, err := s.repo.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTopicNotFound
	}
	if t.AuthorID != userID {
		return nil, ErrNotAuthor
	}
	if !t.Editable(s.editWindow, time.Now()) {
		return nil, ErrEditWindowClosed
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Content != nil {
		t.Content = *req.Content
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)
	return t, nil
}

// Delete removes the author's own topic within the edit window
func (s *Service) Delete(ctx context.Context, userID, topicID uuid.UUID) error {
	t, err := s.repo.GetByID(ctx, topicID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTopicNotFound
	}
	if t.AuthorID != userID {
		return ErrNotAuthor
	}
	if !t.Editable(s.editWindow, time.Now()) {
		return ErrEditWindowClosed
	}

	if err := s.repo.Delete(ctx, topicID); err != nil {
		return err
	}

	s.invalidateLists(ctx)
	return nil
}

// Like increments the like counter
func (s *Service) Like(ctx context.Context, topicID uuid.UUID) error {
	return s.repo.IncrementLikes(ctx, topicID)
}

// CountByCategory reports how many topics a category holds
func (s *Service) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	return s.repo.CountByCategory(ctx, categoryID)
}

type listPage struct {
	Topics []*Topic `json:"topics"`
	Total  int      `json:"total"`
}

func (s *Service) listKey(filter *ListFilter) string {
	category := "all"
	limit, offset := 50, 0
	if filter != nil {
		if filter.CategoryID != uuid.Nil {
			category = filter.CategoryID.String()
		}
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		if filter.Offset > 0 {
			offset = filter.Offset
		}
	}
	return fmt.Sprintf("%slist:%s:%d:%d", CachePrefix, category, limit, offset)
}

func (s *Service) invalidateLists(ctx context.Context) {
	if err := s.cache.InvalidatePrefix(ctx, CachePrefix); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate topic listings")
	}
}
