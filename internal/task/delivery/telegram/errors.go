package telegram

import (
	"errors"
	"fmt"

	"taskbuddy/internal/task"
)

// userMessage returns a user-facing string for the given error.
func userMessage(err error, description string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, task.ErrNoMatch):
		return fmt.Sprintf("No tasks found matching '%s'.", description)
	case errors.Is(err, task.ErrEmptyDescription):
		return "I couldn't work out which task you meant. Try the exact task name!"
	case errors.Is(err, task.ErrNotFound):
		return "I couldn't find that task anymore."
	default:
		return fmt.Sprintf("Error processing your request: %v", err)
	}
}
