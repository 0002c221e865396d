package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskbuddy/internal/model"
	"taskbuddy/internal/task"
)

var testScope = model.Scope{UserID: "telegram_1", Username: "tester"}

func TestAdd(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestUseCase(repo)
	ctx := context.Background()

	deadline := time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)
	created, err := uc.Add(ctx, testScope, task.AddInput{
		Description: "finish the report",
		Deadline:    &deadline,
		Difficulty:  "medium",
		ChatID:      42,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if created.Description != "finish the report" {
		t.Errorf("description = %q", created.Description)
	}
	if created.Deadline == nil || !created.Deadline.Equal(deadline) {
		t.Errorf("deadline = %v, want %v", created.Deadline, deadline)
	}
	if created.Status != model.TaskStatusPending {
		t.Errorf("status = %q, want pending", created.Status)
	}
}

func TestAddEmptyDescription(t *testing.T) {
	uc := newTestUseCase(&mockRepository{})

	for _, description := range []string{"", "   "} {
		if _, err := uc.Add(context.Background(), testScope, task.AddInput{Description: description}); !errors.Is(err, task.ErrEmptyDescription) {
			t.Errorf("Add(%q) error = %v, want ErrEmptyDescription", description, err)
		}
	}
}

func TestListScopedToUser(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestUseCase(repo)

	seedTask(repo, "telegram_1", "finish the report", nil)
	seedTask(repo, "telegram_1", "buy milk", nil)
	seedTask(repo, "telegram_2", "someone else's task", nil)

	out, err := uc.List(context.Background(), testScope)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(out.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(out.Tasks))
	}
	for _, got := range out.Tasks {
		if got.UserID != "telegram_1" {
			t.Errorf("task %q belongs to %q", got.Description, got.UserID)
		}
	}
}

func TestQueryDue(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestUseCase(repo)

	soon := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	later := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	seedTask(repo, "telegram_1", "due this week", &soon)
	seedTask(repo, "telegram_1", "due next week", &later)
	seedTask(repo, "telegram_1", "no deadline", nil)

	out, err := uc.QueryDue(context.Background(), testScope, time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC))
	if err != nil {
		t.Fatalf("QueryDue failed: %v", err)
	}
	if len(out.Tasks) != 1 || out.Tasks[0].Description != "due this week" {
		t.Errorf("got %+v, want only the task due this week", out.Tasks)
	}
}

func TestCompleteSingleMatch(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestUseCase(repo)
	ctx := context.Background()

	seedTask(repo, "telegram_1", "finish the python assignment", nil)
	seedTask(repo, "telegram_1", "buy milk", nil)

	out, err := uc.Complete(ctx, testScope, task.MatchInput{Description: "python assignment"})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if out.Resolved == nil {
		t.Fatalf("expected a resolved task, got candidates: %+v", out.Candidates)
	}
	if out.Resolved.Status != model.TaskStatusDone {
		t.Errorf("status = %q, want done", out.Resolved.Status)
	}

	// The completed task no longer shows up as pending.
	remaining, _ := uc.List(ctx, testScope)
	if len(remaining.Tasks) != 1 || remaining.Tasks[0].Description != "buy milk" {
		t.Errorf("pending after complete = %+v", remaining.Tasks)
	}
}

func TestCompleteIgnoresArticles(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestUseCase(repo)

	seedTask(repo, "telegram_1", "Finish the report", nil)

	out, err := uc.Complete(context.Background(), testScope, task.MatchInput{Description: "finish report"})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if out.Resolved == nil || out.Resolved.Description != "Finish the report" {
		t.Errorf("got %+v, want the stored task resolved", out)
	}
}

func TestCompleteMultipleMatches(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestUseCase(repo)
	ctx := context.Background()

	seedTask(repo, "telegram_1", "finish the math homework", nil)
	seedTask(repo, "telegram_1", "finish the essay", nil)

	out, err := uc.Complete(ctx, testScope, task.MatchInput{Description: "finish"})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if out.Resolved != nil {
		t.Fatalf("ambiguous complete resolved a task: %+v", out.Resolved)
	}
	if len(out.Candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(out.Candidates))
	}

	// Nothing changed until the user picks one.
	pending, _ := uc.List(ctx, testScope)
	if len(pending.Tasks) != 2 {
		t.Errorf("pending after ambiguous complete = %d, want 2", len(pending.Tasks))
	}

	done, err := uc.CompleteByID(ctx, testScope, out.Candidates[0].ID)
	if err != nil {
		t.Fatalf("CompleteByID failed: %v", err)
	}
	if done.Status != model.TaskStatusDone {
		t.Errorf("status = %q, want done", done.Status)
	}
}

func TestCompleteNoMatch(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestUseCase(repo)

	seedTask(repo, "telegram_1", "buy milk", nil)

	if _, err := uc.Complete(context.Background(), testScope, task.MatchInput{Description: "python assignment"}); !errors.Is(err, task.ErrNoMatch) {
		t.Errorf("Complete error = %v, want ErrNoMatch", err)
	}
	if _, err := uc.Complete(context.Background(), testScope, task.MatchInput{Description: ""}); !errors.Is(err, task.ErrEmptyDescription) {
		t.Errorf("Complete error = %v, want ErrEmptyDescription", err)
	}
}

func TestDelete(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestUseCase(repo)
	ctx := context.Background()

	seedTask(repo, "telegram_1", "math homework", nil)
	seedTask(repo, "telegram_1", "buy milk", nil)

	out, err := uc.Delete(ctx, testScope, task.MatchInput{Description: "math homework"})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if out.Resolved == nil || out.Resolved.Description != "math homework" {
		t.Fatalf("got %+v, want the math homework task resolved", out)
	}

	remaining, _ := uc.List(ctx, testScope)
	if len(remaining.Tasks) != 1 || remaining.Tasks[0].Description != "buy milk" {
		t.Errorf("pending after delete = %+v", remaining.Tasks)
	}

	if _, err := uc.Delete(ctx, testScope, task.MatchInput{Description: "math homework"}); !errors.Is(err, task.ErrNoMatch) {
		t.Errorf("second Delete error = %v, want ErrNoMatch", err)
	}
}

func TestDeleteByID(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestUseCase(repo)
	ctx := context.Background()

	created := seedTask(repo, "telegram_1", "math homework", nil)

	deleted, err := uc.DeleteByID(ctx, testScope, created.ID)
	if err != nil {
		t.Fatalf("DeleteByID failed: %v", err)
	}
	if deleted.ID != created.ID {
		t.Errorf("deleted wrong task: %+v", deleted)
	}
	if _, err := uc.DeleteByID(ctx, testScope, created.ID); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("second DeleteByID error = %v, want ErrNotFound", err)
	}
}
