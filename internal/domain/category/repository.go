package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines category data access interface
type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new category repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Category) error {
	query := `
		INSERT INTO categories (id, slug, name, description, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Slug,
		c.Name,
		c.Description,
		c.Position,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	query := `
		SELECT c.*,
		       (SELECT COUNT(*) FROM topics t WHERE t.category_id = c.id AND t.status = 'published') AS topic_count
		FROM categories c
		WHERE c.id = $1
	`
	var c Category
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	query := `
		SELECT c.*,
		       (SELECT COUNT(*) FROM topics t WHERE t.category_id = c.id AND t.status = 'published') AS topic_count
		FROM categories c
		WHERE c.slug = $1
	`
	var c Category
	err := r.db.GetContext(ctx, &c, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) List(ctx context.Context) ([]*Category, error) {
	query := `
		SELECT c.*,
		       (SELECT COUNT(*) FROM topics t WHERE t.category_id = c.id AND t.status = 'published') AS topic_count
		FROM categories c
		ORDER BY c.position ASC, c.name ASC
	`
	var categories []*Category
	err := r.db.SelectContext(ctx, &categories, query)
	return categories, err
}

func (r *repository) Update(ctx context.Context, c *Category) error {
	query := `
		UPDATE categories
		SET name = $1, description = $2, position = $3, updated_at = NOW()
		WHERE id = $4
	`
	result, err := r.db.ExecContext(ctx, query, c.Name, c.Description, c.Position, c.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}
