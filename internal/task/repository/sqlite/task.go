package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskbuddy/internal/model"
	"taskbuddy/internal/task"
	"taskbuddy/internal/task/repository"
)

var _ repository.TaskRepository = (*Repository)(nil)

type taskRow struct {
	ID              string       `db:"id"`
	UserID          string       `db:"user_id"`
	ChatID          int64        `db:"chat_id"`
	Description     string       `db:"description"`
	DescriptionKey  string       `db:"description_key"`
	Deadline        sql.NullTime `db:"deadline"`
	Difficulty      string       `db:"difficulty"`
	Status          string       `db:"status"`
	CalendarEventID string       `db:"calendar_event_id"`
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at"`
	CompletedAt     sql.NullTime `db:"completed_at"`
}

func (row taskRow) toModel() model.Task {
	t := model.Task{
		ID:              row.ID,
		UserID:          row.UserID,
		ChatID:          row.ChatID,
		Description:     row.Description,
		Difficulty:      row.Difficulty,
		Status:          model.TaskStatus(row.Status),
		CalendarEventID: row.CalendarEventID,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if row.Deadline.Valid {
		value := row.Deadline.Time
		t.Deadline = &value
	}
	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		t.CompletedAt = &value
	}
	return t
}

const insertTaskQuery = `
INSERT INTO tasks (id, user_id, chat_id, description, description_key, deadline,
	difficulty, status, calendar_event_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, 'pending', ?, ?, ?);
`

func (r *Repository) Create(ctx context.Context, opts repository.CreateTaskOptions) (model.Task, error) {
	now := time.Now().UTC()
	id := uuid.NewString()

	var deadline sql.NullTime
	if opts.Deadline != nil {
		deadline = sql.NullTime{Time: opts.Deadline.UTC(), Valid: true}
	}

	if _, err := r.db.ExecContext(ctx, insertTaskQuery,
		id, opts.UserID, opts.ChatID, opts.Description, opts.DescriptionKey,
		deadline, opts.Difficulty, opts.CalendarEventID, now, now,
	); err != nil {
		return model.Task{}, fmt.Errorf("insert task: %w", err)
	}

	return r.GetByID(ctx, opts.UserID, id)
}

const getTaskQuery = `SELECT * FROM tasks WHERE user_id = ? AND id = ?;`

func (r *Repository) GetByID(ctx context.Context, userID, id string) (model.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, userID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("get task: %w", err)
	}
	return row.toModel(), nil
}

const listPendingQuery = `
SELECT * FROM tasks
WHERE user_id = ? AND status = 'pending'
ORDER BY deadline IS NULL, deadline, created_at;
`

func (r *Repository) ListPending(ctx context.Context, userID string) ([]model.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listPendingQuery, userID); err != nil {
		return nil, fmt.Errorf("list pending tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toModel())
	}
	return tasks, nil
}

const listDueBeforeQuery = `
SELECT * FROM tasks
WHERE user_id = ? AND status = 'pending' AND deadline IS NOT NULL AND deadline <= ?
ORDER BY deadline, created_at;
`

func (r *Repository) ListDueBefore(ctx context.Context, userID string, until time.Time) ([]model.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listDueBeforeQuery, userID, until.UTC()); err != nil {
		return nil, fmt.Errorf("list due tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toModel())
	}
	return tasks, nil
}

const markDoneQuery = `
UPDATE tasks SET status = 'done', completed_at = ?, updated_at = ?
WHERE user_id = ? AND id = ? AND status = 'pending';
`

func (r *Repository) MarkDone(ctx context.Context, userID, id string) (model.Task, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, markDoneQuery, now, now, userID, id)
	if err != nil {
		return model.Task{}, fmt.Errorf("mark task done: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return model.Task{}, task.ErrNotFound
	}
	return r.GetByID(ctx, userID, id)
}

const deleteTaskQuery = `DELETE FROM tasks WHERE user_id = ? AND id = ?;`

func (r *Repository) Delete(ctx context.Context, userID, id string) (model.Task, error) {
	existing, err := r.GetByID(ctx, userID, id)
	if err != nil {
		return model.Task{}, err
	}
	if _, err := r.db.ExecContext(ctx, deleteTaskQuery, userID, id); err != nil {
		return model.Task{}, fmt.Errorf("delete task: %w", err)
	}
	return existing, nil
}
