package moderation

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus tracks a report through the moderation queue
type ReportStatus string

const (
	ReportOpen     ReportStatus = "open"
	ReportResolved ReportStatus = "resolved"
)

// ReportReason is the submitter's classification of the problem
type ReportReason string

const (
	ReasonSpam      ReportReason = "spam"
	ReasonAbuse     ReportReason = "abuse"
	ReasonOffTopic  ReportReason = "off_topic"
	ReasonDuplicate ReportReason = "duplicate"
	ReasonOther     ReportReason = "other"
)

// Report is a user-filed complaint about a topic or a comment. Exactly
// one of TopicID and CommentID is set.
type Report struct {
	ID         uuid.UUID     `db:"id" json:"id"`
	ReporterID uuid.UUID     `db:"reporter_id" json:"reporter_id"`
	TopicID    uuid.NullUUID `db:"topic_id" json:"topic_id,omitempty"`
	CommentID  uuid.NullUUID `db:"comment_id" json:"comment_id,omitempty"`
	Reason     ReportReason  `db:"reason" json:"reason"`
	Detail     string        `db:"detail" json:"detail,omitempty"`
	Status     ReportStatus  `db:"status" json:"status"`
	ResolvedBy uuid.NullUUID `db:"resolved_by" json:"resolved_by,omitempty"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
	ResolvedAt *time.Time    `db:"resolved_at" json:"resolved_at,omitempty"`
}
