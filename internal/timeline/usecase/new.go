package usecase

import (
	"context"
	"sync"
	"time"

	"proof-timeline/internal/task/repository"
	"proof-timeline/internal/timeline"
	"proof-timeline/pkg/datemath"
	"proof-timeline/pkg/gcalendar"
	pkgLog "proof-timeline/pkg/log"
)

// CalendarMirror is the subset of the Google Calendar client used by the timeline.
// *gcalendar.Client satisfies it.
type CalendarMirror interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	MoveEvent(ctx context.Context, req gcalendar.MoveEventRequest) (*gcalendar.Event, error)
}

// Config tunes the timeline usecase.
type Config struct {
	MaxIterations       int
	UnscheduledDuration time.Duration
	CalendarID          string
	Timezone            string
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.TaskRepository
	calendar CalendarMirror // nil disables mirroring
	dateMath *datemath.Parser
	cfg      Config

	// resolveMu serialises read-resolve-write cycles on the store.
	resolveMu sync.Mutex
	now       func() time.Time
}

// New creates a new timeline UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	calendar CalendarMirror,
	dateMath *datemath.Parser,
	cfg Config,
) timeline.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		dateMath: dateMath,
		cfg:      cfg,
		now:      time.Now,
	}
}
