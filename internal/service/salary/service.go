package salary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/attendance"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/employee"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/leave"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/salary"
)

// fallbackWorkingDays guards the per-day rate against a degenerate
// calendar where every day of the period is off.
const fallbackWorkingDays = 26

type service struct {
	salaryRepo     salary.Repository
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	leaveRepo      leave.Repository
	calendar       Calendar
}

// NewSalaryService creates the salary computation service
func NewSalaryService(
	salaryRepo salary.Repository,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	leaveRepo leave.Repository,
	calendar Calendar,
) salary.Service {
	return &service{
		salaryRepo:     salaryRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		calendar:       calendar,
	}
}

// periodCounts is the outcome of counting one employee's period.
type periodCounts struct {
	Present           int
	Late              int
	Absent            int
	ApprovedLeaveDays int
	WorkingDays       int
}

func (p periodCounts) PayableDays() int {
	return p.Present + p.Late + p.ApprovedLeaveDays
}

// countPeriod aggregates attendance rows and approved leaves over
// [periodStart, periodEnd]. Leave days are deduplicated per calendar day,
// so two approved leaves covering the same day count it once.
func countPeriod(cal Calendar, records []attendance.Attendance, leaves []leave.Leave, periodStart, periodEnd time.Time) periodCounts {
	var counts periodCounts

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			counts.Present++
		case attendance.StatusLate:
			counts.Late++
		case attendance.StatusAbsent:
			counts.Absent++
		}
	}

	counts.ApprovedLeaveDays = ApprovedLeaveDays(cal, leaves, periodStart, periodEnd)

	counts.WorkingDays = cal.WorkingDaysBetween(periodStart, periodEnd)
	if counts.WorkingDays == 0 {
		counts.WorkingDays = fallbackWorkingDays
	}

	return counts
}

// ApprovedLeaveDays counts working days covered by the leaves, clipped to
// [periodStart, periodEnd] and deduplicated per calendar day so two
// approved leaves covering the same day count it once.
func ApprovedLeaveDays(cal Calendar, leaves []leave.Leave, periodStart, periodEnd time.Time) int {
	leaveDays := make(map[string]struct{})
	for _, lv := range leaves {
		clippedStart := lv.StartDate
		if clippedStart.Before(periodStart) {
			clippedStart = periodStart
		}
		clippedEnd := lv.EndDate
		if clippedEnd.After(periodEnd) {
			clippedEnd = periodEnd
		}
		for d := clippedStart; !d.After(clippedEnd); d = d.AddDate(0, 0, 1) {
			if cal.IsWorkingDay(d) {
				leaveDays[d.Format("2006-01-02")] = struct{}{}
			}
		}
	}
	return len(leaveDays)
}

// netSalary is payableDays times the per-day rate. Division happens in
// decimal with no intermediate rounding; only the final figure is rounded
// to two places.
func netSalary(gross decimal.Decimal, payableDays, workingDays int) decimal.Decimal {
	perDay := gross.Div(decimal.NewFromInt(int64(workingDays)))
	return perDay.Mul(decimal.NewFromInt(int64(payableDays))).Round(2)
}

func (s *service) Recompute(ctx context.Context, employeeID int64, anchor time.Time) error {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// Nothing to compute.
			return nil
		}
		return fmt.Errorf("recompute salary: %w", err)
	}
	if emp.Salary == nil {
		// No base salary configured, skip without error.
		return nil
	}

	periodStart, periodEnd := MonthPeriod(anchor)

	counts, err := s.countEmployeePeriod(ctx, emp.ID, periodStart, periodEnd)
	if err != nil {
		return fmt.Errorf("recompute salary: %w", err)
	}

	snapshot := &salary.Snapshot{
		EmployeeID:        emp.ID,
		EmployeeCode:      emp.EmployeeCode,
		EmployeeName:      emp.Name,
		GrossSalary:       *emp.Salary,
		NetSalary:         netSalary(*emp.Salary, counts.PayableDays(), counts.WorkingDays),
		PresentCount:      counts.Present,
		LateCount:         counts.Late,
		AbsentCount:       counts.Absent,
		ApprovedLeaveDays: counts.ApprovedLeaveDays,
		WorkingDays:       counts.WorkingDays,
		SalaryMonth:       periodStart,
		Status:            salary.StatusPending,
	}

	if err := s.salaryRepo.Upsert(ctx, snapshot); err != nil {
		return fmt.Errorf("recompute salary: %w", err)
	}

	return nil
}

func (s *service) RecomputeAll(ctx context.Context, anchor time.Time) error {
	employees, err := s.employeeRepo.ListSalaried(ctx)
	if err != nil {
		return fmt.Errorf("recompute all salaries: %w", err)
	}

	var errs []error
	for _, emp := range employees {
		if err := s.Recompute(ctx, emp.ID, anchor); err != nil {
			slog.Error("Failed to recompute salary",
				"employee_id", emp.ID,
				"month", anchor.Format("2006-01"),
				"error", err,
			)
			errs = append(errs, fmt.Errorf("employee %d: %w", emp.ID, err))
		}
	}

	return errors.Join(errs...)
}

func (s *service) ComputeForRange(ctx context.Context, filter salary.RangeFilter) ([]salary.ReportRow, error) {
	periodStart, periodEnd := resolveRange(filter, time.Now())

	employees, err := s.employeeRepo.ListSalaried(ctx)
	if err != nil {
		return nil, fmt.Errorf("compute salary range: %w", err)
	}

	rows := make([]salary.ReportRow, 0, len(employees))
	for _, emp := range employees {
		counts, err := s.countEmployeePeriod(ctx, emp.ID, periodStart, periodEnd)
		if err != nil {
			return nil, fmt.Errorf("compute salary range: %w", err)
		}

		rows = append(rows, salary.ReportRow{
			EmployeeID:        emp.ID,
			EmployeeCode:      emp.EmployeeCode,
			EmployeeName:      emp.Name,
			GrossSalary:       *emp.Salary,
			NetSalary:         netSalary(*emp.Salary, counts.PayableDays(), counts.WorkingDays),
			PresentCount:      counts.Present,
			LateCount:         counts.Late,
			AbsentCount:       counts.Absent,
			ApprovedLeaveDays: counts.ApprovedLeaveDays,
			WorkingDays:       counts.WorkingDays,
			PeriodStart:       periodStart,
			PeriodEnd:         periodEnd,
		})
	}

	return rows, nil
}

// countEmployeePeriod is the shared read path of the persisting engine and
// the read-only range report. Having a single implementation keeps the
// live report and the stored snapshot from ever disagreeing.
func (s *service) countEmployeePeriod(ctx context.Context, employeeID int64, periodStart, periodEnd time.Time) (periodCounts, error) {
	records, err := s.attendanceRepo.ListByEmployeeInRange(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return periodCounts{}, err
	}

	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return periodCounts{}, err
	}

	return countPeriod(s.calendar, records, leaves, periodStart, periodEnd), nil
}

// resolveRange turns the optional bounds into a concrete period. Both
// bounds absent means the current month; a single bound derives a
// one-month window from that bound.
func resolveRange(filter salary.RangeFilter, now time.Time) (start, end time.Time) {
	switch {
	case filter.From == nil && filter.To == nil:
		return MonthPeriod(now)
	case filter.From != nil && filter.To == nil:
		start = *filter.From
		return start, start.AddDate(0, 1, -1)
	case filter.From == nil && filter.To != nil:
		end = *filter.To
		return end.AddDate(0, -1, 1), end
	default:
		return *filter.From, *filter.To
	}
}

func (s *service) History(ctx context.Context, employeeID int64) ([]salary.SnapshotResponse, error) {
	snapshots, err := s.salaryRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("salary history: %w", err)
	}

	responses := make([]salary.SnapshotResponse, 0, len(snapshots))
	for i := range snapshots {
		responses = append(responses, salary.ToSnapshotResponse(&snapshots[i]))
	}

	return responses, nil
}

func (s *service) ListByMonth(ctx context.Context, year, month int) ([]salary.SnapshotResponse, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	snapshots, err := s.salaryRepo.ListByMonth(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}

	responses := make([]salary.SnapshotResponse, 0, len(snapshots))
	for i := range snapshots {
		responses = append(responses, salary.ToSnapshotResponse(&snapshots[i]))
	}

	return responses, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.salaryRepo.Delete(ctx, id)
}
