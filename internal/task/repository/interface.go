package repository

import (
	"context"
	"time"

	"taskbuddy/internal/model"
)

// CreateTaskOptions carries the fields for a new task row.
type CreateTaskOptions struct {
	UserID          string
	ChatID          int64
	Description     string
	DescriptionKey  string
	Deadline        *time.Time
	Difficulty      string
	CalendarEventID string
}

// TaskRepository is the persistence interface for tasks.
type TaskRepository interface {
	Create(ctx context.Context, opts CreateTaskOptions) (model.Task, error)
	GetByID(ctx context.Context, userID, id string) (model.Task, error)
	ListPending(ctx context.Context, userID string) ([]model.Task, error)
	ListDueBefore(ctx context.Context, userID string, until time.Time) ([]model.Task, error)
	MarkDone(ctx context.Context, userID, id string) (model.Task, error)
	Delete(ctx context.Context, userID, id string) (model.Task, error)
}
