package attendance

import "context"

type Service interface {
	// CheckIn records today's check-in for the employee, classifying it
	// Present or Late against the configured cutoff, and triggers a
	// best-effort salary recompute for the current month.
	CheckIn(ctx context.Context, employeeID int64) (TodayResponse, error)
	// CheckOut closes today's row and stores the worked hours.
	CheckOut(ctx context.Context, employeeID int64) (TodayResponse, error)
	Today(ctx context.Context, employeeID int64) (TodayResponse, error)
	History(ctx context.Context, employeeID int64, filter HistoryFilter) (HistoryResponse, error)
}
