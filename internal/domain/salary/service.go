package salary

import (
	"context"
	"time"
)

type Service interface {
	// Recompute recalculates and persists the monthly snapshot for one
	// employee. anchor may be any date inside the target month. Employees
	// without a configured base salary are skipped without error.
	Recompute(ctx context.Context, employeeID int64, anchor time.Time) error

	// RecomputeAll recomputes the month's snapshot for every salaried
	// employee. Per-employee failures are collected, not fatal.
	RecomputeAll(ctx context.Context, anchor time.Time) error

	// ComputeForRange computes live salary figures for all salaried
	// employees over the filter window without persisting anything.
	ComputeForRange(ctx context.Context, filter RangeFilter) ([]ReportRow, error)

	History(ctx context.Context, employeeID int64) ([]SnapshotResponse, error)
	ListByMonth(ctx context.Context, year, month int) ([]SnapshotResponse, error)
	Delete(ctx context.Context, id int64) error
}
