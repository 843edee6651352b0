package contact

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("lead not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)
