package usecase

import (
	"context"
	"strings"
	"time"

	"taskbuddy/internal/model"
	"taskbuddy/internal/nlu"
	"taskbuddy/internal/task"
	"taskbuddy/internal/task/repository"
	"taskbuddy/pkg/gcalendar"
)

// Add stores a new task and, when it has a deadline, schedules a matching
// Google Calendar event.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input task.AddInput) (model.Task, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return model.Task{}, task.ErrEmptyDescription
	}

	eventID := uc.tryCreateCalendarEvent(ctx, description, input.Deadline)

	created, err := uc.repo.Create(ctx, repository.CreateTaskOptions{
		UserID:          sc.UserID,
		ChatID:          input.ChatID,
		Description:     description,
		DescriptionKey:  nlu.Key(description),
		Deadline:        input.Deadline,
		Difficulty:      input.Difficulty,
		CalendarEventID: eventID,
	})
	if err != nil {
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "Add: created task %q id=%s user=%s", created.Description, created.ID, sc.UserID)
	return created, nil
}

// tryCreateCalendarEvent attempts to create a Google Calendar event ending
// at the deadline. Returns the event ID, or empty string when the calendar
// is not configured or the call fails (non-fatal).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, description string, deadline *time.Time) string {
	if uc.calendar == nil || deadline == nil {
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     description,
		Description: "Created by task buddy",
		StartTime:   deadline.Add(-time.Hour),
		EndTime:     *deadline,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Add: calendar event creation failed for %q (non-fatal): %v", description, err)
		return ""
	}
	return event.ID
}

// tryDeleteCalendarEvent removes the calendar event of a finished or
// deleted task. Failures are logged and swallowed.
func (uc *implUseCase) tryDeleteCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.CalendarEventID == "" {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, t.CalendarEventID); err != nil {
		uc.l.Warnf(ctx, "calendar event cleanup failed for task %s (non-fatal): %v", t.ID, err)
	}
}
