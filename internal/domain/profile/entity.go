package profile

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Profile represents a public forum profile, 1:1 with a user account.
// Role is projected from the users table on read; it is never written
// through this domain.
type Profile struct {
	UserID         uuid.UUID      `db:"user_id" json:"user_id"`
	DisplayName    string         `db:"display_name" json:"display_name"`
	Bio            sql.NullString `db:"bio" json:"bio,omitempty"`
	AvatarURL      sql.NullString `db:"avatar_url" json:"avatar_url,omitempty"`
	AvatarThumbURL sql.NullString `db:"avatar_thumb_url" json:"avatar_thumb_url,omitempty"`
	AvatarKey      sql.NullString `db:"avatar_key" json:"-"`
	Role           string         `db:"role" json:"role"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}
