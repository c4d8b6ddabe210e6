package topic

import "errors"

var (
	ErrTopicNotFound    = errors.New("topic not found")
	ErrNotAuthor        = errors.New("not the topic author")
	ErrEditWindowClosed = errors.New("edit window has closed")
	ErrTopicLocked      = errors.New("topic is locked")
	ErrCategoryNotFound = errors.New("category not found")
)
