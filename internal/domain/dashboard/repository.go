package dashboard

import (
	"context"
	"time"
)

type Repository interface {
	AdminSummary(ctx context.Context, today time.Time) (*AdminSummary, error)
	EmployeeSummary(ctx context.Context, employeeID int64, today time.Time) (*EmployeeSummary, error)
}
