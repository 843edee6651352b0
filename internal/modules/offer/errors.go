package offer

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrSessionNotFound = errors.New("wizard session not found")
	ErrNotSubmittable  = errors.New("submission not reachable from this step")
	ErrAlreadyDone     = errors.New("session already submitted")
)
