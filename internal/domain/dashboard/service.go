package dashboard

import "context"

type Service interface {
	AdminSummary(ctx context.Context) (*AdminSummary, error)
	EmployeeSummary(ctx context.Context, employeeID int64) (*EmployeeSummary, error)
}
