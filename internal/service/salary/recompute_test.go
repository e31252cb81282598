package salary

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/attendance"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/employee"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/leave"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/salary"
)

type recordingSalaryRepo struct {
	salary.Repository

	upserts []salary.Snapshot
}

func (r *recordingSalaryRepo) Upsert(ctx context.Context, s *salary.Snapshot) error {
	r.upserts = append(r.upserts, *s)
	return nil
}

type stubEmployeeRepo struct {
	employee.Repository

	emp employee.Employee
	err error
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	if s.err != nil {
		return employee.Employee{}, s.err
	}
	return s.emp, nil
}

type stubAttendanceRepo struct {
	attendance.Repository

	records []attendance.Attendance
}

func (s *stubAttendanceRepo) ListByEmployeeInRange(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.Attendance, error) {
	return s.records, nil
}

type stubLeaveRepo struct {
	leave.Repository

	leaves []leave.Leave
}

func (s *stubLeaveRepo) ListApprovedOverlapping(ctx context.Context, employeeID int64, start, end time.Time) ([]leave.Leave, error) {
	return s.leaves, nil
}

func newEngineForTest(salaryRepo *recordingSalaryRepo, empRepo *stubEmployeeRepo, records []attendance.Attendance, leaves []leave.Leave) salary.Service {
	return NewSalaryService(
		salaryRepo,
		empRepo,
		&stubAttendanceRepo{records: records},
		&stubLeaveRepo{leaves: leaves},
		NewCalendar(time.Friday, FixedHolidays),
	)
}

func TestRecomputeSkipsEmployeeWithoutSalary(t *testing.T) {
	salaryRepo := &recordingSalaryRepo{}
	empRepo := &stubEmployeeRepo{emp: employee.Employee{
		ID:           1,
		EmployeeCode: "EMP001",
		Name:         "Jane Doe",
		Salary:       nil,
	}}
	svc := newEngineForTest(salaryRepo, empRepo, nil, nil)

	err := svc.Recompute(context.Background(), 1, date(2025, time.June, 15))

	require.NoError(t, err)
	assert.Empty(t, salaryRepo.upserts)
}

func TestRecomputeSkipsMissingEmployee(t *testing.T) {
	salaryRepo := &recordingSalaryRepo{}
	empRepo := &stubEmployeeRepo{err: employee.ErrEmployeeNotFound}
	svc := newEngineForTest(salaryRepo, empRepo, nil, nil)

	err := svc.Recompute(context.Background(), 42, date(2025, time.June, 15))

	require.NoError(t, err)
	assert.Empty(t, salaryRepo.upserts)
}

func TestRecomputeWritesIdenticalSnapshotTwice(t *testing.T) {
	gross := decimal.NewFromInt(26000)
	salaryRepo := &recordingSalaryRepo{}
	empRepo := &stubEmployeeRepo{emp: employee.Employee{
		ID:           1,
		EmployeeCode: "EMP001",
		Name:         "Jane Doe",
		Salary:       &gross,
	}}
	records := []attendance.Attendance{
		attendanceRow(date(2025, time.June, 2), attendance.StatusPresent),
		attendanceRow(date(2025, time.June, 3), attendance.StatusLate),
		attendanceRow(date(2025, time.June, 4), attendance.StatusAbsent),
	}
	leaves := []leave.Leave{
		approvedLeave(date(2025, time.June, 9), date(2025, time.June, 10)),
	}
	svc := newEngineForTest(salaryRepo, empRepo, records, leaves)

	require.NoError(t, svc.Recompute(context.Background(), 1, date(2025, time.June, 15)))
	require.NoError(t, svc.Recompute(context.Background(), 1, date(2025, time.June, 15)))

	require.Len(t, salaryRepo.upserts, 2)
	first, second := salaryRepo.upserts[0], salaryRepo.upserts[1]
	assert.Equal(t, first, second)

	// Present 1, late 1, leave 2 of 26 working days.
	assert.Equal(t, date(2025, time.June, 1), first.SalaryMonth)
	assert.Equal(t, 1, first.PresentCount)
	assert.Equal(t, 1, first.LateCount)
	assert.Equal(t, 1, first.AbsentCount)
	assert.Equal(t, 2, first.ApprovedLeaveDays)
	assert.Equal(t, 26, first.WorkingDays)
	assert.Equal(t, "4000.00", first.NetSalary.StringFixed(2))
	assert.Equal(t, salary.StatusPending, first.Status)
	assert.Equal(t, "EMP001", first.EmployeeCode)
	assert.Equal(t, "Jane Doe", first.EmployeeName)
}
