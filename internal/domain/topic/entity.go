package topic

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a topic
type Status string

const (
	StatusPublished Status = "published"
	StatusPending   Status = "pending"
	StatusRejected  Status = "rejected"
	StatusArchived  Status = "archived"
)

// Topic represents a forum discussion thread
type Topic struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	AuthorID   uuid.UUID `db:"author_id" json:"author_id"`
	CategoryID uuid.UUID `db:"category_id" json:"category_id"`
	Status     Status    `db:"status" json:"status"`
	IsPinned   bool      `db:"is_pinned" json:"is_pinned"`
	IsFeatured bool      `db:"is_featured" json:"is_featured"`
	IsLocked   bool      `db:"is_locked" json:"is_locked"`
	ViewCount  int       `db:"view_count" json:"view_count"`
	ReplyCount int       `db:"reply_count" json:"reply_count"`
	LikeCount  int       `db:"like_count" json:"like_count"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Editable reports whether the author may still edit or delete the
// topic: within the window of its creation and not archived.
func (t *Topic) Editable(window time.Duration, now time.Time) bool {
	if t.Status == StatusArchived {
		return false
	}
	return now.Sub(t.CreatedAt) <= window
}
