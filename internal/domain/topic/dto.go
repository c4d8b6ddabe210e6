package topic

import "github.com/google/uuid"

// CreateTopicRequest represents a new topic
type CreateTopicRequest struct {
	Title      string    `json:"title" validate:"required,min=4,max=200"`
	Content    string    `json:"content" validate:"required,min=10,max=50000"`
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
}

// UpdateTopicRequest represents an author edit
type UpdateTopicRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=4,max=200"`
	Content *string `json:"content,omitempty" validate:"omitempty,min=10,max=50000"`
}

// ListFilter for the public topic listing
type ListFilter struct {
	CategoryID uuid.UUID `json:"category_id,omitempty"`
	Limit      int       `json:"limit,omitempty"`
	Offset     int       `json:"offset,omitempty"`
}
