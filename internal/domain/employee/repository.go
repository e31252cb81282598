package employee

import "context"

type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	// ListSalaried returns approved employees with a configured base salary,
	// the population the salary engine and the range report iterate over.
	ListSalaried(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
	UpdatePhotoPath(ctx context.Context, id int64, photoPath string) error
	Delete(ctx context.Context, id int64) error
}
