package category

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Category represents a forum section topics are filed under
type Category struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Slug        string         `db:"slug" json:"slug"`
	Name        string         `db:"name" json:"name"`
	Description sql.NullString `db:"description" json:"description,omitempty"`
	Position    int            `db:"position" json:"position"`
	TopicCount  int            `db:"topic_count" json:"topic_count"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}
