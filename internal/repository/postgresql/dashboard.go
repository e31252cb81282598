package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/attendance"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/dashboard"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/employee"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/leave"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) AdminSummary(ctx context.Context, today time.Time) (*dashboard.AdminSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees WHERE status = $1),
			(SELECT COUNT(*) FROM employees WHERE status = $2),
			(SELECT COUNT(*) FROM departments),
			(SELECT COUNT(*) FROM attendances WHERE attendance_date = $3 AND status = $4),
			(SELECT COUNT(*) FROM attendances WHERE attendance_date = $3 AND status = $5),
			(SELECT COUNT(*) FROM leaves WHERE status = $6)
	`

	var s dashboard.AdminSummary
	err := q.QueryRow(ctx, query,
		employee.StatusApproved, employee.StatusPending, today,
		attendance.StatusPresent, attendance.StatusLate, leave.StatusPending,
	).Scan(
		&s.TotalEmployees, &s.PendingEmployees, &s.TotalDepartments,
		&s.PresentToday, &s.LateToday, &s.PendingLeaves,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build admin summary: %w", err)
	}

	// Approved employees with no attendance row today.
	s.AbsentToday = s.TotalEmployees - s.PresentToday - s.LateToday
	if s.AbsentToday < 0 {
		s.AbsentToday = 0
	}

	return &s, nil
}

func (r *dashboardRepository) EmployeeSummary(ctx context.Context, employeeID int64, today time.Time) (*dashboard.EmployeeSummary, error) {
	q := GetQuerier(ctx, r.db)

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	query := `
		SELECT
			(SELECT COUNT(*) FROM attendances
			 WHERE employee_id = $1 AND attendance_date BETWEEN $2 AND $3 AND status = $4),
			(SELECT COUNT(*) FROM attendances
			 WHERE employee_id = $1 AND attendance_date BETWEEN $2 AND $3 AND status = $5),
			(SELECT COUNT(*) FROM leaves
			 WHERE employee_id = $1 AND status = $6),
			(SELECT EXISTS (SELECT 1 FROM attendances
			 WHERE employee_id = $1 AND attendance_date = $7 AND check_in IS NOT NULL)),
			(SELECT EXISTS (SELECT 1 FROM attendances
			 WHERE employee_id = $1 AND attendance_date = $7 AND check_out IS NOT NULL))
	`

	var s dashboard.EmployeeSummary
	err := q.QueryRow(ctx, query,
		employeeID, monthStart, monthEnd,
		attendance.StatusPresent, attendance.StatusLate, leave.StatusPending, today,
	).Scan(
		&s.PresentThisMonth, &s.LateThisMonth, &s.PendingLeaves,
		&s.CheckedInToday, &s.CheckedOutToday,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build employee summary: %w", err)
	}

	return &s, nil
}
