package testimonial

import "errors"

var (
	ErrNotFound          = errors.New("testimonial not found")
	ErrInvalidTransition = errors.New("invalid testimonial status transition")
)
