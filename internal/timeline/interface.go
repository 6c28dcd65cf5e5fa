package timeline

import (
	"context"

	"proof-timeline/internal/model"
)

// UseCase exposes the day timeline and the conflict resolution flow.
type UseCase interface {
	// ListDay returns the tasks scheduled on one calendar day.
	ListDay(ctx context.Context, input ListDayInput) (ListDayOutput, error)

	// CreateTask adds a task to the timeline and mirrors it to Google Calendar when configured.
	CreateTask(ctx context.Context, input CreateTaskInput) (model.Task, error)

	// ChangeActualStart records the real start of a task, re-places every task it now
	// overlaps and persists the new schedule.
	ChangeActualStart(ctx context.Context, input ChangeActualStartInput) (ChangeActualStartOutput, error)
}
