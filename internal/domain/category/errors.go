package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrSlugTaken        = errors.New("category slug already in use")
	ErrCategoryNotEmpty = errors.New("category still contains topics")
)
