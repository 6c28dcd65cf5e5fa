package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"proof-timeline/internal/model"
	"proof-timeline/internal/task/repository"
	"proof-timeline/pkg/datemath"
	pkgLog "proof-timeline/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]model.Task
	l     pkgLog.Logger
}

// New creates an in-process TaskRepository. Returned tasks are copies.
func New(l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		tasks: make(map[string]model.Task),
		l:     l,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if opt.Title == "" || opt.ScheduledStart.IsZero() {
		return model.Task{}, fmt.Errorf("%w: title and scheduled start are required", repository.ErrInvalidTask)
	}
	if opt.DurationMinutes < 0 {
		return model.Task{}, fmt.Errorf("%w: negative duration", repository.ErrInvalidTask)
	}

	id := opt.ID
	if id == "" {
		id = uuid.NewString()
	}

	t := model.Task{
		ID:                   id,
		Title:                opt.Title,
		ScheduledStart:       opt.ScheduledStart,
		DurationMinutes:      opt.DurationMinutes,
		Status:               model.TaskStatusScheduled,
		VerificationStart:    opt.VerificationStart,
		VerificationComplete: opt.VerificationComplete,
		RewardCoins:          opt.RewardCoins,
		CalendarEventID:      opt.CalendarEventID,
	}
	if !opt.WithoutEnd {
		t.ScheduledEnd = opt.ScheduledStart.Add(time.Duration(opt.DurationMinutes) * time.Minute)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tasks[id]; exists {
		return model.Task{}, repository.ErrAlreadyExists
	}
	r.tasks[id] = t.Clone()

	r.l.Debugf(ctx, "task/repository/memory.CreateTask: %s %q at %s", id, t.Title, t.ScheduledStart.Format(time.RFC3339))
	return t, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t.Clone(), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loc := opt.Location
	if loc == nil && !opt.Day.IsZero() {
		loc = opt.Day.Location()
	}

	out := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if !opt.Day.IsZero() && !datemath.SameDay(t.ScheduledStart, opt.Day, loc) {
			continue
		}
		if len(opt.Statuses) > 0 && !hasStatus(opt.Statuses, t.Status) {
			continue
		}
		out = append(out, t.Clone())
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledStart.Equal(out[j].ScheduledStart) {
			return out[i].ScheduledStart.Before(out[j].ScheduledStart)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, task model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.ID]; !ok {
		return model.Task{}, repository.ErrNotFound
	}
	r.tasks[task.ID] = task.Clone()
	return task, nil
}

func hasStatus(statuses []model.TaskStatus, s model.TaskStatus) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}
