package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskbuddy/internal/model"
	"taskbuddy/internal/nlu"
	"taskbuddy/internal/task"
	"taskbuddy/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// In-memory task repository for testing.
type mockRepository struct {
	tasks []model.Task
	err   error
}

func (m *mockRepository) Create(ctx context.Context, opts repository.CreateTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	now := time.Now().UTC()
	t := model.Task{
		ID:              uuid.NewString(),
		UserID:          opts.UserID,
		ChatID:          opts.ChatID,
		Description:     opts.Description,
		Deadline:        opts.Deadline,
		Difficulty:      opts.Difficulty,
		Status:          model.TaskStatusPending,
		CalendarEventID: opts.CalendarEventID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockRepository) GetByID(ctx context.Context, userID, id string) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	for _, t := range m.tasks {
		if t.UserID == userID && t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, task.ErrNotFound
}

func (m *mockRepository) ListPending(ctx context.Context, userID string) ([]model.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	var pending []model.Task
	for _, t := range m.tasks {
		if t.UserID == userID && t.Status == model.TaskStatusPending {
			pending = append(pending, t)
		}
	}
	return pending, nil
}

func (m *mockRepository) ListDueBefore(ctx context.Context, userID string, until time.Time) ([]model.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	var due []model.Task
	for _, t := range m.tasks {
		if t.UserID == userID && t.Status == model.TaskStatusPending && t.Deadline != nil && !t.Deadline.After(until) {
			due = append(due, t)
		}
	}
	return due, nil
}

func (m *mockRepository) MarkDone(ctx context.Context, userID, id string) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	for i, t := range m.tasks {
		if t.UserID == userID && t.ID == id && t.Status == model.TaskStatusPending {
			now := time.Now().UTC()
			m.tasks[i].Status = model.TaskStatusDone
			m.tasks[i].CompletedAt = &now
			m.tasks[i].UpdatedAt = now
			return m.tasks[i], nil
		}
	}
	return model.Task{}, task.ErrNotFound
}

func (m *mockRepository) Delete(ctx context.Context, userID, id string) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	for i, t := range m.tasks {
		if t.UserID == userID && t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return t, nil
		}
	}
	return model.Task{}, task.ErrNotFound
}

func seedTask(repo *mockRepository, userID, description string, deadline *time.Time) model.Task {
	created, _ := repo.Create(context.Background(), repository.CreateTaskOptions{
		UserID:         userID,
		ChatID:         42,
		Description:    description,
		DescriptionKey: nlu.Key(description),
		Difficulty:     "easy",
		Deadline:       deadline,
	})
	return created
}

func newTestUseCase(repo *mockRepository) *implUseCase {
	return New(&mockLogger{}, repo, nil, "primary", "UTC")
}
