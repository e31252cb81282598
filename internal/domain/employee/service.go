package employee

import (
	"context"
	"io"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id int64) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error

	// Approve and Reject decide a pending registration; the decision is
	// pushed to the employee's notification inbox and mailbox.
	Approve(ctx context.Context, id int64) (EmployeeResponse, error)
	Reject(ctx context.Context, id int64) (EmployeeResponse, error)

	UploadPhoto(ctx context.Context, id int64, file io.Reader, fileName, contentType string) (EmployeeResponse, error)
}
