package repository

import (
	"context"

	"proof-timeline/internal/model"
)

// TaskRepository is the task store collaborator. The timeline and
// verification cores read and write tasks only through it.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, task model.Task) (model.Task, error)
}
