package usecase

import (
	"context"
	"time"

	"taskbuddy/internal/model"
	"taskbuddy/internal/task"
)

// List returns all pending tasks ordered by deadline, soonest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	tasks, err := uc.repo.ListPending(ctx, sc.UserID)
	if err != nil {
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks}, nil
}

// QueryDue returns pending tasks whose deadline falls no later than until.
// Tasks without a deadline are excluded.
func (uc *implUseCase) QueryDue(ctx context.Context, sc model.Scope, until time.Time) (task.ListOutput, error) {
	tasks, err := uc.repo.ListDueBefore(ctx, sc.UserID, until)
	if err != nil {
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks}, nil
}
