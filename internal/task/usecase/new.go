package usecase

import (
	"taskbuddy/internal/task/repository"
	"taskbuddy/pkg/gcalendar"
	pkgLog "taskbuddy/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.TaskRepository
	calendar   *gcalendar.Client
	calendarID string
	timezone   string
}

// New creates a new task UseCase instance. calendar may be nil, in which
// case tasks are stored without calendar events.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	calendar *gcalendar.Client,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
