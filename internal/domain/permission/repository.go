package permission

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines permission grant data access interface
type Repository interface {
	List(ctx context.Context) ([]*Grant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Grant, error)
	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new permission repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*Grant, error) {
	query := `SELECT * FROM permission_grants ORDER BY role, kind, created_at`
	var grants []*Grant
	err := r.db.SelectContext(ctx, &grants, query)
	return grants, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Grant, error) {
	query := `SELECT * FROM permission_grants WHERE id = $1`
	var g Grant
	err := r.db.GetContext(ctx, &g, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE permission_grants SET enabled = $1, updated_at = NOW() WHERE id = $2`, enabled, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrGrantNotFound
	}
	return nil
}
