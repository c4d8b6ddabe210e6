package comment

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a comment
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Comment represents a reply inside a topic
type Comment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TopicID   uuid.UUID `db:"topic_id" json:"topic_id"`
	AuthorID  uuid.UUID `db:"author_id" json:"author_id"`
	Content   string    `db:"content" json:"content"`
	Status    Status    `db:"status" json:"status"`
	LikeCount int       `db:"like_count" json:"like_count"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
