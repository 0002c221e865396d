package model

import "time"

// TaskStatus is the lifecycle state of a stored task.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
)

// Task represents a task stored in the repository.
type Task struct {
	ID              string     // UUID
	UserID          string     // Owner scope, e.g. "telegram_12345"
	ChatID          int64      // Telegram chat the task was created from
	Description     string     // Normalized task description (storage key)
	Deadline        *time.Time // Resolved absolute deadline, nil when none was found
	Difficulty      string     // "easy" | "medium" | "hard"
	Status          TaskStatus
	CalendarEventID string     // Google Calendar event ID (may be empty)
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CompletedAt     *time.Time
}
