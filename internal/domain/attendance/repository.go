package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	// GetByEmployeeAndDate returns nil when no row exists for the day;
	// the check-in workflow uses it for its upsert-by-lookup.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Attendance, error)
	Update(ctx context.Context, att Attendance) error
	// ListByEmployeeInRange returns the employee's rows with dates in
	// [start, end] inclusive, newest first.
	ListByEmployeeInRange(ctx context.Context, employeeID int64, start, end time.Time) ([]Attendance, error)
	// ListInRange returns all employees' rows in [start, end] inclusive,
	// with employee name and code joined, for report building.
	ListInRange(ctx context.Context, start, end time.Time) ([]Attendance, error)
}
