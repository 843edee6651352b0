package crm

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidDueDate = errors.New("invalid due date")
)
