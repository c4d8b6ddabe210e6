package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/majlis/majlis-api/internal/domain/topic"
	"github.com/majlis/majlis-api/internal/domain/user"
	"github.com/majlis/majlis-api/internal/pkg/cache"
)

// UserChecker validates follow targets
type UserChecker interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// Service assembles each user's social feed from the topics of the
// accounts they follow.
type Service struct {
	repo     Repository
	topics   topic.Repository
	users    UserChecker
	cache    *cache.Cache
	cacheTTL time.Duration
}

// NewService creates feed service
func NewService(repo Repository, topics topic.Repository, users UserChecker, c *cache.Cache, cacheTTL time.Duration) *Service {
	return &Service{
		repo:     repo,
		topics:   topics,
		users:    users,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// Follow adds a follow edge. Following twice is a no-op.
func (s *Service) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}

	u, err := s.users.GetByID(ctx, followeeID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	if err := s.repo.Follow(ctx, followerID, followeeID); err != nil {
		return err
	}

	s.invalidateFeed(ctx, followerID)
	return nil
}

// Unfollow removes a follow edge. Unfollowing an account that was never
// followed succeeds.
func (s *Service) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if err := s.repo.Unfollow(ctx, followerID, followeeID); err != nil {
		return err
	}

	s.invalidateFeed(ctx, followerID)
	return nil
}

// ListFeed returns recent published topics by the accounts the user
// follows, cached per user.
func (s *Service) ListFeed(ctx context.Context, userID uuid.UUID, limit int) ([]*topic.Topic, error) {
	key := feedKey(userID, limit)

	var cached []*topic.Topic
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	followees, err := s.repo.ListFollowees(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(followees) == 0 {
		return []*topic.Topic{}, nil
	}

	topics, err := s.topics.ListPublishedByAuthors(ctx, followees, limit)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, key, topics, s.cacheTTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache feed")
	}
	return topics, nil
}

// Followers returns the follower count for a user profile.
func (s *Service) Followers(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountFollowers(ctx, userID)
}

func (s *Service) invalidateFeed(ctx context.Context, userID uuid.UUID) {
	if err := s.cache.InvalidatePrefix(ctx, fmt.Sprintf("feed:%s:", userID)); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate feed cache")
	}
}

func feedKey(userID uuid.UUID, limit int) string {
	return fmt.Sprintf("feed:%s:%d", userID, limit)
}
