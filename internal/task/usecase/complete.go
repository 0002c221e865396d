package usecase

import (
	"context"
	"strings"

	"taskbuddy/internal/model"
	"taskbuddy/internal/task"
)

// Complete marks the pending task matching input.Description as done.
// With exactly one match the task is completed; with several, the
// candidates come back untouched for the user to pick from.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, input task.MatchInput) (task.MatchOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return task.MatchOutput{}, task.ErrEmptyDescription
	}

	pending, err := uc.repo.ListPending(ctx, sc.UserID)
	if err != nil {
		return task.MatchOutput{}, err
	}

	matched := matchTasks(input.Description, pending)
	switch len(matched) {
	case 0:
		return task.MatchOutput{}, task.ErrNoMatch
	case 1:
		done, err := uc.markDone(ctx, sc, matched[0].ID)
		if err != nil {
			return task.MatchOutput{}, err
		}
		return task.MatchOutput{Resolved: &done}, nil
	default:
		uc.l.Infof(ctx, "Complete: %d candidates for %q user=%s", len(matched), input.Description, sc.UserID)
		return task.MatchOutput{Candidates: matched}, nil
	}
}

// CompleteByID marks a specific task as done. Used after disambiguation.
func (uc *implUseCase) CompleteByID(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	return uc.markDone(ctx, sc, id)
}

func (uc *implUseCase) markDone(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	done, err := uc.repo.MarkDone(ctx, sc.UserID, id)
	if err != nil {
		return model.Task{}, err
	}
	uc.tryDeleteCalendarEvent(ctx, done)
	uc.l.Infof(ctx, "Complete: marked task %q done user=%s", done.Description, sc.UserID)
	return done, nil
}
