package usecase

import (
	"context"
	"errors"
	"strings"

	"proof-timeline/internal/model"
	"proof-timeline/internal/task/repository"
	"proof-timeline/internal/timeline"
	"proof-timeline/pkg/gcalendar"
)

// CreateTask stores a new task and, when asked, creates a matching calendar event.
func (uc *implUseCase) CreateTask(ctx context.Context, input timeline.CreateTaskInput) (model.Task, error) {
	if strings.TrimSpace(input.Title) == "" || input.ScheduledStart.IsZero() {
		return model.Task{}, timeline.ErrInvalidTask
	}
	if input.DurationMinutes < 0 || (!input.WithoutEnd && input.DurationMinutes == 0) {
		return model.Task{}, timeline.ErrMissingDuration
	}

	t, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:                strings.TrimSpace(input.Title),
		ScheduledStart:       input.ScheduledStart.In(uc.dateMath.Location()),
		DurationMinutes:      input.DurationMinutes,
		WithoutEnd:           input.WithoutEnd,
		VerificationStart:    input.VerificationStart,
		VerificationComplete: input.VerificationComplete,
		RewardCoins:          input.RewardCoins,
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalidTask) {
			return model.Task{}, timeline.ErrInvalidTask
		}
		uc.l.Errorf(ctx, "timeline.usecase.CreateTask: repo.CreateTask failed: %v", err)
		return model.Task{}, err
	}

	if !input.MirrorToCalendar || uc.calendar == nil {
		return t, nil
	}

	end := t.ScheduledEnd
	if end.IsZero() {
		end = t.ScheduledStart.Add(t.Duration())
	}
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.cfg.CalendarID,
		Summary:    t.Title,
		StartTime:  t.ScheduledStart,
		EndTime:    end,
		Timezone:   uc.cfg.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "timeline.usecase.CreateTask: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return t, nil
	}

	t.CalendarEventID = event.ID
	if _, err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Warnf(ctx, "timeline.usecase.CreateTask: failed to store calendar event id for %s: %v", t.ID, err)
	}
	return t, nil
}
