package category

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// TopicCounter reports how many topics remain in a category
type TopicCounter interface {
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
}

// Service handles category business logic
type Service struct {
	repo   Repository
	topics TopicCounter
}

// NewService creates category service
func NewService(repo Repository, topics TopicCounter) *Service {
	return &Service{repo: repo, topics: topics}
}

// Create adds a new category
func (s *Service) Create(ctx context.Context, req *CreateCategoryRequest) (*Category, error) {
	existing, err := s.repo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	now := time.Now()
	c := &Category{
		ID:        uuid.New(),
		Slug:      req.Slug,
		Name:      req.Name,
		Position:  req.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Description != "" {
		c.Description = sql.NullString{String: req.Description, Valid: true}
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns a category by id
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

// List returns all categories in display order
func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

// Update applies a category edit
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryRequest) (*Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = sql.NullString{String: *req.Description, Valid: *req.Description != ""}
	}
	if req.Position != nil {
		c.Position = *req.Position
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes an empty category
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := s.topics.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryNotEmpty
	}

	return s.repo.Delete(ctx, id)
}

// Exists reports whether a category id refers to a real category
func (s *Service) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Exists(ctx, id)
}
