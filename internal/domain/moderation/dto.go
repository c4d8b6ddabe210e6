package moderation

import "github.com/google/uuid"

// PinRequest sets the pinned flag on a topic
type PinRequest struct {
	Pinned *bool `json:"pinned" validate:"required"`
}

// FeatureRequest sets the featured flag on a topic
type FeatureRequest struct {
	Featured *bool `json:"featured" validate:"required"`
}

// MoveRequest reassigns a topic to a category
type MoveRequest struct {
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
}

// CreateReportRequest files a report against a topic or a comment
type CreateReportRequest struct {
	TopicID   *uuid.UUID `json:"topic_id,omitempty"`
	CommentID *uuid.UUID `json:"comment_id,omitempty"`
	Reason    string     `json:"reason" validate:"required,report_reason"`
	Detail    string     `json:"detail,omitempty" validate:"max=2000"`
}
