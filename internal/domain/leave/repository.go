package leave

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, leave Leave) (Leave, error)
	GetByID(ctx context.Context, id int64) (Leave, error)
	List(ctx context.Context, filter LeaveFilter) ([]Leave, int64, error)
	Update(ctx context.Context, leave Leave) error
	UpdateStatus(ctx context.Context, id int64, status Status, decidedBy int64, decidedAt time.Time) error
	Delete(ctx context.Context, id int64) error

	// ListApprovedOverlapping returns the employee's approved leaves whose
	// [start_date, end_date] intersects [start, end]. This is the salary
	// engine's read path.
	ListApprovedOverlapping(ctx context.Context, employeeID int64, start, end time.Time) ([]Leave, error)
	// HasApprovedOverlap reports whether another approved leave (excluding
	// excludeID) intersects the range. Enforced at approval time so no two
	// approved leaves for one employee overlap.
	HasApprovedOverlap(ctx context.Context, employeeID int64, start, end time.Time, excludeID int64) (bool, error)
}
