package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"proof-timeline/internal/model"
	"proof-timeline/internal/task/repository"
	"proof-timeline/internal/task/repository/memory"
	pkgLog "proof-timeline/pkg/log"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(pkgLog.NewNop())
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	first, err := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "Cook", ScheduledStart: day.Add(12 * time.Hour), DurationMinutes: 45})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.ScheduledEnd.Equal(day.Add(12*time.Hour + 45*time.Minute)) {
		t.Errorf("unexpected end: %v", first.ScheduledEnd)
	}

	_, err = repo.CreateTask(ctx, repository.CreateTaskOptions{ID: "early", Title: "Run", ScheduledStart: day.Add(7 * time.Hour), DurationMinutes: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "Tomorrow", ScheduledStart: day.Add(31 * time.Hour), DurationMinutes: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Duplicate ID", func(t *testing.T) {
		_, err := repo.CreateTask(ctx, repository.CreateTaskOptions{ID: "early", Title: "Again", ScheduledStart: day})
		if !errors.Is(err, repository.ErrAlreadyExists) {
			t.Errorf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: ""})
		if !errors.Is(err, repository.ErrInvalidTask) {
			t.Errorf("expected ErrInvalidTask, got %v", err)
		}
	})

	t.Run("List by day sorted", func(t *testing.T) {
		tasks, err := repo.ListTasks(ctx, repository.ListTasksOptions{Day: day})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 2 || tasks[0].ID != "early" {
			t.Fatalf("unexpected list: %+v", tasks)
		}
	})

	t.Run("Update and status filter", func(t *testing.T) {
		got, _ := repo.GetTask(ctx, "early")
		got.Status = model.TaskStatusCompleted
		if _, err := repo.UpdateTask(ctx, got); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tasks, _ := repo.ListTasks(ctx, repository.ListTasksOptions{Statuses: []model.TaskStatus{model.TaskStatusCompleted}})
		if len(tasks) != 1 || tasks[0].ID != "early" {
			t.Errorf("unexpected filtered list: %+v", tasks)
		}
	})

	t.Run("Returned tasks are copies", func(t *testing.T) {
		got, _ := repo.GetTask(ctx, first.ID)
		got.Title = "mutated"
		again, _ := repo.GetTask(ctx, first.ID)
		if again.Title != "Cook" {
			t.Errorf("store leaked internal state")
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, err := repo.GetTask(ctx, "nope"); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := repo.UpdateTask(ctx, model.Task{ID: "nope"}); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
