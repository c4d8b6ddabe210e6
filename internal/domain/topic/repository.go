package topic

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines topic data access interface. Flag, status and
// category setters are single-column writes used by moderation actions.
type Repository interface {
	Create(ctx context.Context, t *Topic) error
	GetByID(ctx context.Context, id uuid.UUID) (*Topic, error)
	Update(ctx context.Context, t *Topic) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListPublished(ctx context.Context, filter *ListFilter) ([]*Topic, error)
	CountPublished(ctx context.Context, filter *ListFilter) (int, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
	ListPublishedByAuthors(ctx context.Context, authorIDs []uuid.UUID, limit int) ([]*Topic, error)

	SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
	SetCategory(ctx context.Context, id uuid.UUID, categoryID uuid.UUID) error

	IncrementViews(ctx context.Context, id uuid.UUID) error
	IncrementLikes(ctx context.Context, id uuid.UUID) error
	IncrementReplies(ctx context.Context, id uuid.UUID, delta int) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new topic repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Topic) error {
	query := `
		INSERT INTO topics (
			id, title, content, author_id, category_id, status,
			is_pinned, is_featured, is_locked,
			view_count, reply_count, like_count,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Content,
		t.AuthorID,
		t.CategoryID,
		t.Status,
		t.IsPinned,
		t.IsFeatured,
		t.IsLocked,
		t.ViewCount,
		t.ReplyCount,
		t.LikeCount,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Topic, error) {
	query := `SELECT * FROM topics WHERE id = $1`
	var t Topic
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *Topic) error {
	query := `
		UPDATE topics
		SET title = $1, content = $2, updated_at = NOW()
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, t.Title, t.Content, t.ID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM topics WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *repository) ListPublished(ctx context.Context, filter *ListFilter) ([]*Topic, error) {
	query := `SELECT * FROM topics WHERE status = 'published'`
	args := []interface{}{}
	argPos := 1

	if filter != nil && filter.CategoryID != uuid.Nil {
		query += fmt.Sprintf(` AND category_id = $%d`, argPos)
		args = append(args, filter.CategoryID)
		argPos++
	}

	query += ` ORDER BY is_pinned DESC, created_at DESC`

	limit := 50
	offset := 0
	if filter != nil {
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		if filter.Offset > 0 {
			offset = filter.Offset
		}
	}
	query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, limit, offset)

	var topics []*Topic
	err := r.db.SelectContext(ctx, &topics, query, args...)
	return topics, err
}

func (r *repository) CountPublished(ctx context.Context, filter *ListFilter) (int, error) {
	query := `SELECT COUNT(*) FROM topics WHERE status = 'published'`
	args := []interface{}{}

	if filter != nil && filter.CategoryID != uuid.Nil {
		query += ` AND category_id = $1`
		args = append(args, filter.CategoryID)
	}

	var count int
	err := r.db.GetContext(ctx, &count, query, args...)
	return count, err
}

func (r *repository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM topics WHERE category_id = $1`
	var count int
	err := r.db.GetContext(ctx, &count, query, categoryID)
	return count, err
}

func (r *repository) ListPublishedByAuthors(ctx context.Context, authorIDs []uuid.UUID, limit int) ([]*Topic, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}

	query, args, err := sqlx.In(`
		SELECT * FROM topics
		WHERE status = 'published' AND author_id IN (?)
		ORDER BY created_at DESC
		LIMIT ?
	`, authorIDs, limit)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var topics []*Topic
	err = r.db.SelectContext(ctx, &topics, query, args...)
	return topics, err
}

func (r *repository) SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE topics SET is_pinned = $1, updated_at = NOW() WHERE id = $2`, pinned, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *repository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE topics SET is_featured = $1, updated_at = NOW() WHERE id = $2`, featured, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *repository) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE topics SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *repository) SetCategory(ctx context.Context, id uuid.UUID, categoryID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE topics SET category_id = $1, updated_at = NOW() WHERE id = $2`, categoryID, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *repository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE topics SET view_count = view_count + 1 WHERE id = $1`, id)
	return err
}

func (r *repository) IncrementLikes(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE topics SET like_count = like_count + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *repository) IncrementReplies(ctx context.Context, id uuid.UUID, delta int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE topics SET reply_count = GREATEST(reply_count + $1, 0) WHERE id = $2`, delta, id)
	return err
}

func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTopicNotFound
	}
	return nil
}
