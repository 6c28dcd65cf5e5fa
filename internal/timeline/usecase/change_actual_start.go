package usecase

import (
	"context"
	"errors"
	"fmt"

	"proof-timeline/internal/model"
	"proof-timeline/internal/task/repository"
	"proof-timeline/internal/timeline"
	"proof-timeline/pkg/gcalendar"
)

// ChangeActualStart resolves the conflicts caused by a task starting at a
// different time than planned, persists every changed task and mirrors the
// moves to Google Calendar.
func (uc *implUseCase) ChangeActualStart(ctx context.Context, input timeline.ChangeActualStartInput) (timeline.ChangeActualStartOutput, error) {
	if input.TaskID == "" {
		return timeline.ChangeActualStartOutput{}, timeline.ErrTaskNotFound
	}
	if input.ActualStart.IsZero() {
		return timeline.ChangeActualStartOutput{}, timeline.ErrInvalidActualStart
	}
	actualStart := input.ActualStart.In(uc.dateMath.Location())

	uc.resolveMu.Lock()
	defer uc.resolveMu.Unlock()

	mover, err := uc.repo.GetTask(ctx, input.TaskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return timeline.ChangeActualStartOutput{}, timeline.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "timeline.usecase.ChangeActualStart: repo.GetTask failed: %v", err)
		return timeline.ChangeActualStartOutput{}, err
	}

	dayTasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Day:      actualStart,
		Location: uc.dateMath.Location(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "timeline.usecase.ChangeActualStart: repo.ListTasks failed: %v", err)
		return timeline.ChangeActualStartOutput{}, err
	}
	if !containsTask(dayTasks, mover.ID) {
		// The task started on a different day than it was planned for.
		dayTasks = append(dayTasks, mover)
	}

	res, err := timeline.ResolveStartTimeChange(mover.ID, actualStart, dayTasks, timeline.ResolveOptions{
		MaxIterations:       uc.cfg.MaxIterations,
		UnscheduledDuration: uc.cfg.UnscheduledDuration,
	})
	if err != nil {
		return timeline.ChangeActualStartOutput{}, err
	}

	for _, s := range res.Fallbacks() {
		uc.l.Warnf(ctx, "timeline.usecase.ChangeActualStart: slot search exhausted for task %s, placed at %s", s.TaskID, s.ToStart.Format("15:04"))
	}
	if len(res.Unscheduled) > 0 {
		uc.l.Warnf(ctx, "timeline.usecase.ChangeActualStart: %d task(s) without end skipped: %v", len(res.Unscheduled), res.Unscheduled)
	}

	changed := append([]model.Task{res.Mover}, shiftedTasks(res)...)
	for _, t := range changed {
		if _, err := uc.repo.UpdateTask(ctx, t); err != nil {
			uc.l.Errorf(ctx, "timeline.usecase.ChangeActualStart: repo.UpdateTask %s failed: %v", t.ID, err)
			return timeline.ChangeActualStartOutput{}, fmt.Errorf("failed to persist task %s: %w", t.ID, err)
		}
	}

	uc.l.Infof(ctx, "timeline.usecase.ChangeActualStart: task %s started at %s, %d task(s) shifted",
		mover.ID, actualStart.Format("15:04"), len(res.Shifts))

	return timeline.ChangeActualStartOutput{
		Task:        res.Mover,
		Shifts:      res.Shifts,
		Unscheduled: res.Unscheduled,
		Mirrored:    uc.mirror(ctx, changed),
	}, nil
}

// mirror moves calendar events for the changed tasks. Failures are logged and skipped.
func (uc *implUseCase) mirror(ctx context.Context, tasks []model.Task) int {
	if uc.calendar == nil {
		return 0
	}

	moved := 0
	for _, t := range tasks {
		if t.CalendarEventID == "" {
			continue
		}
		end := t.ScheduledEnd
		if end.IsZero() {
			end = t.ScheduledStart.Add(t.Duration())
		}
		_, err := uc.calendar.MoveEvent(ctx, gcalendar.MoveEventRequest{
			CalendarID: uc.cfg.CalendarID,
			EventID:    t.CalendarEventID,
			StartTime:  t.ScheduledStart,
			EndTime:    end,
			Timezone:   uc.cfg.Timezone,
		})
		if err != nil {
			uc.l.Warnf(ctx, "timeline.usecase.mirror: calendar move failed for %s (non-fatal): %v", t.ID, err)
			continue
		}
		moved++
	}
	return moved
}

func shiftedTasks(res timeline.Resolution) []model.Task {
	byID := make(map[string]model.Task, len(res.Tasks))
	for _, t := range res.Tasks {
		byID[t.ID] = t
	}
	out := make([]model.Task, 0, len(res.Shifts))
	for _, s := range res.Shifts {
		out = append(out, byID[s.TaskID])
	}
	return out
}

func containsTask(tasks []model.Task, id string) bool {
	for _, t := range tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}
