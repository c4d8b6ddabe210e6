package comment

import "errors"

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotAuthor        = errors.New("not the comment author")
	ErrEditWindowClosed = errors.New("edit window has closed")
	ErrTopicNotFound    = errors.New("topic not found")
	ErrTopicLocked      = errors.New("topic is locked")
)
