package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyDescription = errors.New("task description is empty")
	ErrNoMatch          = errors.New("no task matches the description")
	ErrNotFound         = errors.New("task not found")
)
