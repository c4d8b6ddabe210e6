package feed

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines follow edge data access interface
type Repository interface {
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	ListFollowees(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)
	ListFollowers(ctx context.Context, followeeID uuid.UUID) ([]uuid.UUID, error)
	CountFollowers(ctx context.Context, followeeID uuid.UUID) (int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new feed repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	// Refollowing is a no-op rather than an error.
	query := `
		INSERT INTO follows (follower_id, followee_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	return err
}

func (r *repository) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`, followerID, followeeID)
	return err
}

func (r *repository) ListFollowees(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids,
		`SELECT followee_id FROM follows WHERE follower_id = $1`, followerID)
	return ids, err
}

func (r *repository) ListFollowers(ctx context.Context, followeeID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids,
		`SELECT follower_id FROM follows WHERE followee_id = $1`, followeeID)
	return ids, err
}

func (r *repository) CountFollowers(ctx context.Context, followeeID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM follows WHERE followee_id = $1`, followeeID)
	return count, err
}
