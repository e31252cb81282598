package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/dashboard"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/leave"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/salary"
	salarysvc "github.com/smart-attendance/attendance-backend-go/internal/service/salary"
)

type fakeDashboardRepo struct {
	summary dashboard.EmployeeSummary
}

func (f *fakeDashboardRepo) AdminSummary(ctx context.Context, today time.Time) (*dashboard.AdminSummary, error) {
	return &dashboard.AdminSummary{}, nil
}

func (f *fakeDashboardRepo) EmployeeSummary(ctx context.Context, employeeID int64, today time.Time) (*dashboard.EmployeeSummary, error) {
	s := f.summary
	return &s, nil
}

type fakeLeaveRepo struct {
	leave.Repository
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(ctx context.Context, employeeID int64, start, end time.Time) ([]leave.Leave, error) {
	return nil, nil
}

type fakeSalaryRepo struct {
	salary.Repository

	snapshot   *salary.Snapshot
	askedMonth time.Time
}

func (f *fakeSalaryRepo) GetByEmployeeAndMonth(ctx context.Context, employeeID int64, month time.Time) (*salary.Snapshot, error) {
	f.askedMonth = month
	if f.snapshot == nil {
		return nil, salary.ErrSnapshotNotFound
	}
	return f.snapshot, nil
}

func TestEmployeeSummaryIncludesLastSnapshot(t *testing.T) {
	now := time.Now().UTC()
	prevMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)

	salaryRepo := &fakeSalaryRepo{snapshot: &salary.Snapshot{
		EmployeeID:  1,
		NetSalary:   decimal.NewFromInt(24000),
		SalaryMonth: prevMonth,
	}}
	svc := NewDashboardService(
		&fakeDashboardRepo{},
		&fakeLeaveRepo{},
		salaryRepo,
		salarysvc.NewCalendar(time.Friday, salarysvc.FixedHolidays),
	)

	summary, err := svc.EmployeeSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, prevMonth, salaryRepo.askedMonth)
	require.NotNil(t, summary.LastNetSalary)
	assert.True(t, summary.LastNetSalary.Equal(decimal.NewFromInt(24000)))
	require.NotNil(t, summary.LastSalaryMonth)
	assert.Equal(t, prevMonth.Format("2006-01"), *summary.LastSalaryMonth)
}

func TestEmployeeSummaryWithoutSnapshot(t *testing.T) {
	svc := NewDashboardService(
		&fakeDashboardRepo{},
		&fakeLeaveRepo{},
		&fakeSalaryRepo{},
		salarysvc.NewCalendar(time.Friday, salarysvc.FixedHolidays),
	)

	summary, err := svc.EmployeeSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Nil(t, summary.LastNetSalary)
	assert.Nil(t, summary.LastSalaryMonth)
}
