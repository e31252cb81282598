package task

import "context"

type Service interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	MyTasks(ctx context.Context, employeeID int64) ([]TaskResponse, error)
	List(ctx context.Context) ([]TaskResponse, error)
	Update(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, id, employeeID int64) error
}
