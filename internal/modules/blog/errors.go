package blog

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("post not found")
)
