package profile

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidImage    = errors.New("invalid image upload")
)
