package moderation

import "errors"

var (
	ErrTopicNotFound    = errors.New("topic not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrReportNotFound   = errors.New("report not found")
	ErrReportResolved   = errors.New("report already resolved")
)
