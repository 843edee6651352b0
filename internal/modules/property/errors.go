package property

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("property not found")
	ErrSlugTaken  = errors.New("slug already in use")
)
