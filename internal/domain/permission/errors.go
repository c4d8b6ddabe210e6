package permission

import "errors"

var (
	ErrGrantNotFound = errors.New("grant not found")
)
