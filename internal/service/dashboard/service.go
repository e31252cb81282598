package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/dashboard"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/leave"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/salary"
	salarysvc "github.com/smart-attendance/attendance-backend-go/internal/service/salary"
)

type service struct {
	repo       dashboard.Repository
	leaveRepo  leave.Repository
	salaryRepo salary.Repository
	calendar   salarysvc.Calendar
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo dashboard.Repository, leaveRepo leave.Repository, salaryRepo salary.Repository, calendar salarysvc.Calendar) dashboard.Service {
	return &service{repo: repo, leaveRepo: leaveRepo, salaryRepo: salaryRepo, calendar: calendar}
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *service) AdminSummary(ctx context.Context) (*dashboard.AdminSummary, error) {
	return s.repo.AdminSummary(ctx, today())
}

func (s *service) EmployeeSummary(ctx context.Context, employeeID int64) (*dashboard.EmployeeSummary, error) {
	day := today()
	monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)

	summary, err := s.repo.EmployeeSummary(ctx, employeeID, day)
	if err != nil {
		return nil, err
	}

	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, employeeID, monthStart, day)
	if err != nil {
		return nil, err
	}
	summary.ApprovedLeaveDays = salarysvc.ApprovedLeaveDays(s.calendar, leaves, monthStart, day)

	// Working days elapsed this month with neither an attendance row nor
	// an approved leave day.
	elapsed := s.calendar.WorkingDaysBetween(monthStart, day)
	absent := elapsed - summary.PresentThisMonth - summary.LateThisMonth - summary.ApprovedLeaveDays
	if absent < 0 {
		absent = 0
	}
	summary.AbsentThisMonth = absent

	// The previous month is the latest one the engine has finalized.
	prevMonth := monthStart.AddDate(0, -1, 0)
	snap, err := s.salaryRepo.GetByEmployeeAndMonth(ctx, employeeID, prevMonth)
	switch {
	case err == nil:
		summary.LastNetSalary = &snap.NetSalary
		m := snap.SalaryMonth.Format("2006-01")
		summary.LastSalaryMonth = &m
	case !errors.Is(err, salary.ErrSnapshotNotFound):
		return nil, err
	}

	return summary, nil
}
