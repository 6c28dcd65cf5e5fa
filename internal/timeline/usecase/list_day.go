package usecase

import (
	"context"
	"fmt"

	"proof-timeline/internal/task/repository"
	"proof-timeline/internal/timeline"
)

// ListDay returns the tasks of the requested day in start order.
func (uc *implUseCase) ListDay(ctx context.Context, input timeline.ListDayInput) (timeline.ListDayOutput, error) {
	day, err := uc.dateMath.ParseDay(input.Day, uc.now())
	if err != nil {
		return timeline.ListDayOutput{}, fmt.Errorf("%w: %v", timeline.ErrInvalidDay, err)
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Day:      day,
		Location: uc.dateMath.Location(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "timeline.usecase.ListDay: repo.ListTasks failed: %v", err)
		return timeline.ListDayOutput{}, err
	}

	return timeline.ListDayOutput{Day: day, Tasks: tasks}, nil
}
