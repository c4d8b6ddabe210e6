package moderation

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/majlis/majlis-api/internal/domain/topic"
	"github.com/majlis/majlis-api/internal/pkg/cache"
)

// CategoryChecker validates category references before a move is written
type CategoryChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Executor applies moderation actions to topics. It assumes the caller
// has already been authorized; routes carry the permission middleware.
// Every persisted action invalidates the cached topic listings.
type Executor struct {
	topics     topic.Repository
	categories CategoryChecker
	cache      *cache.Cache
}

// NewExecutor creates a moderation executor.
func NewExecutor(topics topic.Repository, categories CategoryChecker, c *cache.Cache) *Executor {
	return &Executor{topics: topics, categories: categories, cache: c}
}

// PinTopic sets the pinned flag. Pinning an already pinned topic is a
// success.
func (e *Executor) PinTopic(ctx context.Context, actorID, topicID uuid.UUID, pinned bool) error {
	t, err := e.mustGet(ctx, topicID)
	if err != nil {
		return err
	}

	if err := e.topics.SetPinned(ctx, topicID, pinned); err != nil {
		return e.mapTopicErr(err)
	}

	e.invalidate(ctx)
	e.audit(actorID, topicID, "pin_topic").Bool("pinned", pinned).Bool("was_pinned", t.IsPinned).Msg("topic pin updated")
	return nil
}

// FeatureTopic sets the featured flag. Idempotent like PinTopic.
func (e *Executor) FeatureTopic(ctx context.Context, actorID, topicID uuid.UUID, featured bool) error {
	t, err := e.mustGet(ctx, topicID)
	if err != nil {
		return err
	}

	if err := e.topics.SetFeatured(ctx, topicID, featured); err != nil {
		return e.mapTopicErr(err)
	}

	e.invalidate(ctx)
	e.audit(actorID, topicID, "feature_topic").Bool("featured", featured).Bool("was_featured", t.IsFeatured).Msg("topic feature updated")
	return nil
}

// HideTopic archives a topic, removing it from public listings. Hiding
// is one way: an already archived topic stays archived and the call
// succeeds.
func (e *Executor) HideTopic(ctx context.Context, actorID, topicID uuid.UUID) error {
	t, err := e.mustGet(ctx, topicID)
	if err != nil {
		return err
	}
	if t.Status == topic.StatusArchived {
		return nil
	}

	if err := e.topics.SetStatus(ctx, topicID, topic.StatusArchived); err != nil {
		return e.mapTopicErr(err)
	}

	e.invalidate(ctx)
	e.audit(actorID, topicID, "hide_topic").Msg("topic hidden")
	return nil
}

// MoveTopic reassigns a topic to another category. Moving a topic to
// the category it is already in writes and succeeds.
func (e *Executor) MoveTopic(ctx context.Context, actorID, topicID, categoryID uuid.UUID) error {
	if _, err := e.mustGet(ctx, topicID); err != nil {
		return err
	}

	exists, err := e.categories.Exists(ctx, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCategoryNotFound
	}

	if err := e.topics.SetCategory(ctx, topicID, categoryID); err != nil {
		return e.mapTopicErr(err)
	}

	e.invalidate(ctx)
	e.audit(actorID, topicID, "move_topic").Str("category_id", categoryID.String()).Msg("topic moved")
	return nil
}

// UpdateTopic edits a topic's title or content without the author or
// edit window checks that apply to regular users.
func (e *Executor) UpdateTopic(ctx context.Context, actorID, topicID uuid.UUID, req *topic.UpdateTopicRequest) (*topic.Topic, error) {
	t, err := e.mustGet(ctx, topicID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Content != nil {
		t.Content = *req.Content
	}

	if err := e.topics.Update(ctx, t); err != nil {
		return nil, e.mapTopicErr(err)
	}

	e.invalidate(ctx)
	e.audit(actorID, topicID, "update_topic").Msg("topic edited")
	return t, nil
}

// DeleteTopic permanently removes a topic and its comments.
func (e *Executor) DeleteTopic(ctx context.Context, actorID, topicID uuid.UUID) error {
	if _, err := e.mustGet(ctx, topicID); err != nil {
		return err
	}

	if err := e.topics.Delete(ctx, topicID); err != nil {
		return e.mapTopicErr(err)
	}

	e.invalidate(ctx)
	e.audit(actorID, topicID, "delete_topic").Msg("topic deleted")
	return nil
}

func (e *Executor) mustGet(ctx context.Context, topicID uuid.UUID) (*topic.Topic, error) {
	t, err := e.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTopicNotFound
	}
	return t, nil
}

func (e *Executor) mapTopicErr(err error) error {
	if err == topic.ErrTopicNotFound {
		return ErrTopicNotFound
	}
	return err
}

func (e *Executor) invalidate(ctx context.Context) {
	if err := e.cache.InvalidatePrefix(ctx, topic.CachePrefix); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate topic cache")
	}
}

func (e *Executor) audit(actorID, topicID uuid.UUID, action string) *zerolog.Event {
	return log.Info().
		Str("actor_id", actorID.String()).
		Str("topic_id", topicID.String()).
		Str("action", action)
}
