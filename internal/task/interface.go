package task

import (
	"context"
	"time"

	"taskbuddy/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Add stores a new task and optionally schedules a calendar event for
	// its deadline.
	Add(ctx context.Context, sc model.Scope, input AddInput) (model.Task, error)

	// List returns all pending tasks ordered by deadline.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)

	// QueryDue returns pending tasks due no later than until.
	QueryDue(ctx context.Context, sc model.Scope, until time.Time) (ListOutput, error)

	// Complete marks the task matching description as done. With several
	// matches nothing changes and the candidates come back for the user to
	// pick from.
	Complete(ctx context.Context, sc model.Scope, input MatchInput) (MatchOutput, error)

	// CompleteByID marks a specific task as done (disambiguation followup).
	CompleteByID(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// Delete removes the task matching description, with the same
	// disambiguation contract as Complete.
	Delete(ctx context.Context, sc model.Scope, input MatchInput) (MatchOutput, error)

	// DeleteByID removes a specific task (disambiguation followup).
	DeleteByID(ctx context.Context, sc model.Scope, id string) (model.Task, error)
}
