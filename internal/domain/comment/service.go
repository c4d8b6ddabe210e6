package comment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/majlis/majlis-api/internal/domain/topic"
)

// Service handles comment business logic
type Service struct {
	repo       Repository
	topicRepo  topic.Repository
	editWindow time.Duration
}

// NewService creates new comment service
func NewService(repo Repository, topicRepo topic.Repository, editWindow time.Duration) *Service {
	return &Service{
		repo:       repo,
		topicRepo:  topicRepo,
		editWindow: editWindow,
	}
}

// Create adds a comment to a published, unlocked topic and bumps the
// topic reply counter.
func (s *Service) Create(ctx context.Context, topicID, authorID uuid.UUID, req *CreateCommentRequest) (*Comment, error) {
	t, err := s.topicRepo.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if t == nil || t.Status != topic.StatusPublished {
		return nil, ErrTopicNotFound
	}
	if t.IsLocked {
		return nil, ErrTopicLocked
	}

	now := time.Now()
	c := &Comment{
		ID:        uuid.New(),
		TopicID:   topicID,
		AuthorID:  authorID,
		Content:   req.Content,
		Status:    StatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	if err := s.topicRepo.IncrementReplies(ctx, topicID, 1); err != nil {
		log.Warn().Err(err).Str("topic_id", topicID.String()).Msg("failed to increment reply count")
	}

	return c, nil
}

// ListByTopic returns published comments for a topic, oldest first.
func (s *Service) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*Comment, error) {
	return s.repo.ListByTopic(ctx, topicID)
}

// Delete removes the author's own comment within the edit window.
func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCommentNotFound
	}
	if c.AuthorID != userID {
		return ErrNotAuthor
	}
	if time.Since(c.CreatedAt) > s.editWindow {
		return ErrEditWindowClosed
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if c.Status == StatusPublished {
		if err := s.topicRepo.IncrementReplies(ctx, c.TopicID, -1); err != nil {
			log.Warn().Err(err).Str("topic_id", c.TopicID.String()).Msg("failed to decrement reply count")
		}
	}

	return nil
}

// Hide archives a comment without deleting it. Staff only, enforced
// at the route layer.
func (s *Service) Hide(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCommentNotFound
	}
	if c.Status == StatusArchived {
		return nil
	}

	if err := s.repo.SetStatus(ctx, id, StatusArchived); err != nil {
		return err
	}

	if err := s.topicRepo.IncrementReplies(ctx, c.TopicID, -1); err != nil {
		log.Warn().Err(err).Str("topic_id", c.TopicID.String()).Msg("failed to decrement reply count")
	}

	return nil
}

// Like increments the like counter on a comment.
func (s *Service) Like(ctx context.Context, id uuid.UUID) error {
	return s.repo.IncrementLikes(ctx, id)
}
