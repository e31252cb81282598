package salary

import (
	"context"
	"time"
)

type Repository interface {
	// Upsert writes the snapshot for (EmployeeID, SalaryMonth) in a single
	// atomic statement. Concurrent recomputes for the same pair must never
	// produce duplicate rows.
	Upsert(ctx context.Context, snapshot *Snapshot) error
	GetByEmployeeAndMonth(ctx context.Context, employeeID int64, month time.Time) (*Snapshot, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Snapshot, error)
	ListByMonth(ctx context.Context, month time.Time) ([]Snapshot, error)
	Delete(ctx context.Context, id int64) error
}
