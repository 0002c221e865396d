package usecase

import (
	"context"
	"strings"

	"taskbuddy/internal/model"
	"taskbuddy/internal/task"
)

// Delete removes the pending task matching input.Description, with the
// same disambiguation contract as Complete.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input task.MatchInput) (task.MatchOutput, error) {
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
		deleted, err := uc.remove(ctx, sc, matched[0].ID)
		if err != nil {
			return task.MatchOutput{}, err
		}
		return task.MatchOutput{Resolved: &deleted}, nil
	default:
		uc.l.Infof(ctx, "Delete: %d candidates for %q user=%s", len(matched), input.Description, sc.UserID)
		return task.MatchOutput{Candidates: matched}, nil
	}
}

// DeleteByID removes a specific task. Used after disambiguation.
func (uc *implUseCase) DeleteByID(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	return uc.remove(ctx, sc, id)
}

func (uc *implUseCase) remove(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	deleted, err := uc.repo.Delete(ctx, sc.UserID, id)
	if err != nil {
		return model.Task{}, err
	}
	uc.tryDeleteCalendarEvent(ctx, deleted)
	uc.l.Infof(ctx, "Delete: removed task %q user=%s", deleted.Description, sc.UserID)
	return deleted, nil
}
