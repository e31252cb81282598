package task

import "context"

type Repository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id int64) (Task, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Task, error)
	// List returns every employee's tasks with name and code joined.
	List(ctx context.Context) ([]Task, error)
	Update(ctx context.Context, t Task) error
	Delete(ctx context.Context, id int64) error
}
