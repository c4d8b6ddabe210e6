package profile

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines profile data access interface
type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL, thumbURL, key string) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new profile repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Profile) error {
	query := `
		INSERT INTO profiles (user_id, display_name, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID,
		p.DisplayName,
		p.Bio,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	query := `
		SELECT p.user_id, p.display_name, p.bio, p.avatar_url, p.avatar_thumb_url,
		       p.avatar_key, u.role, p.created_at, p.updated_at
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`
	var p Profile
	err := r.db.GetContext(ctx, &p, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $1, bio = $2, updated_at = NOW()
		WHERE user_id = $3
	`
	result, err := r.db.ExecContext(ctx, query, p.DisplayName, p.Bio, p.UserID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *repository) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL, thumbURL, key string) error {
	query := `
		UPDATE profiles
		SET avatar_url = $1, avatar_thumb_url = $2, avatar_key = $3, updated_at = NOW()
		WHERE user_id = $4
	`
	result, err := r.db.ExecContext(ctx, query, avatarURL, thumbURL, key, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProfileNotFound
	}
	return nil
}
