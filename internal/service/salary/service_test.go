package salary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/attendance"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/leave"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/salary"
)

func attendanceRow(day time.Time, status attendance.Status) attendance.Attendance {
	return attendance.Attendance{EmployeeID: 1, Date: day, Status: status}
}

func approvedLeave(start, end time.Time) leave.Leave {
	return leave.Leave{EmployeeID: 1, StartDate: start, EndDate: end, Status: leave.StatusApproved}
}

func TestCountPeriodMixedMonth(t *testing.T) {
	cal := NewCalendar(time.Friday, FixedHolidays)
	start, end := MonthPeriod(date(2025, time.June, 1))

	records := []attendance.Attendance{
		attendanceRow(date(2025, time.June, 2), attendance.StatusPresent),
		attendanceRow(date(2025, time.June, 3), attendance.StatusPresent),
		attendanceRow(date(2025, time.June, 4), attendance.StatusLate),
		attendanceRow(date(2025, time.June, 5), attendance.StatusAbsent),
	}
	// Thu Jun 12 through Sat Jun 14: Fri Jun 13 is the off day.
	leaves := []leave.Leave{
		approvedLeave(date(2025, time.June, 12), date(2025, time.June, 14)),
	}

	counts := countPeriod(cal, records, leaves, start, end)

	assert.Equal(t, 2, counts.Present)
	assert.Equal(t, 1, counts.Late)
	assert.Equal(t, 1, counts.Absent)
	assert.Equal(t, 2, counts.ApprovedLeaveDays)
	assert.Equal(t, 26, counts.WorkingDays)
	assert.Equal(t, 5, counts.PayableDays())
}

func TestCountPeriodLeaveClippedToPeriod(t *testing.T) {
	cal := NewCalendar(time.Friday, FixedHolidays)
	start, end := MonthPeriod(date(2025, time.June, 1))

	// Leave starts in May, only the June days count here.
	leaves := []leave.Leave{
		approvedLeave(date(2025, time.May, 28), date(2025, time.June, 3)),
	}

	counts := countPeriod(cal, nil, leaves, start, end)

	// Jun 1 (Sun), Jun 2 (Mon), Jun 3 (Tue).
	assert.Equal(t, 3, counts.ApprovedLeaveDays)
}

func TestCountPeriodCrossMonthLeaveSplitsWithoutLoss(t *testing.T) {
	cal := NewCalendar(time.Friday, FixedHolidays)

	// Sat Jun 28 through Thu Jul 3, no Friday inside the range.
	lv := approvedLeave(date(2025, time.June, 28), date(2025, time.July, 3))

	juneStart, juneEnd := MonthPeriod(date(2025, time.June, 1))
	julyStart, julyEnd := MonthPeriod(date(2025, time.July, 1))

	june := countPeriod(cal, nil, []leave.Leave{lv}, juneStart, juneEnd)
	july := countPeriod(cal, nil, []leave.Leave{lv}, julyStart, julyEnd)

	full := cal.WorkingDaysBetween(lv.StartDate, lv.EndDate)
	assert.Equal(t, 3, june.ApprovedLeaveDays)
	assert.Equal(t, 3, july.ApprovedLeaveDays)
	assert.Equal(t, full, june.ApprovedLeaveDays+july.ApprovedLeaveDays)
}

func TestCountPeriodOverlappingLeavesDeduplicated(t *testing.T) {
	cal := NewCalendar(time.Friday, FixedHolidays)
	start, end := MonthPeriod(date(2025, time.June, 1))

	leaves := []leave.Leave{
		approvedLeave(date(2025, time.June, 9), date(2025, time.June, 10)),
		approvedLeave(date(2025, time.June, 10), date(2025, time.June, 11)),
	}

	counts := countPeriod(cal, nil, leaves, start, end)

	// Jun 9, 10, 11 counted once each despite the shared day.
	assert.Equal(t, 3, counts.ApprovedLeaveDays)
}

func TestCountPeriodHolidayAndOffDayExcludedFromLeave(t *testing.T) {
	cal := NewCalendar(time.Friday, FixedHolidays)
	start, end := MonthPeriod(date(2025, time.May, 1))

	// Thu May 1 is a fixed holiday, Fri May 2 is the off day.
	leaves := []leave.Leave{
		approvedLeave(date(2025, time.May, 1), date(2025, time.May, 2)),
	}

	counts := countPeriod(cal, nil, leaves, start, end)

	assert.Equal(t, 0, counts.ApprovedLeaveDays)
}

func TestCountPeriodZeroWorkingDaysFallsBack(t *testing.T) {
	everyDay := func(year int, month time.Month) []time.Time {
		var days []time.Time
		start, end := MonthPeriod(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days = append(days, d)
		}
		return days
	}
	cal := NewCalendar(time.Friday, everyDay)
	start, end := MonthPeriod(date(2025, time.June, 1))

	counts := countPeriod(cal, nil, nil, start, end)

	assert.Equal(t, fallbackWorkingDays, counts.WorkingDays)
}

func TestCountPeriodIsDeterministic(t *testing.T) {
	cal := NewCalendar(time.Friday, FixedHolidays)
	start, end := MonthPeriod(date(2025, time.June, 1))

	records := []attendance.Attendance{
		attendanceRow(date(2025, time.June, 2), attendance.StatusPresent),
		attendanceRow(date(2025, time.June, 4), attendance.StatusLate),
	}
	leaves := []leave.Leave{
		approvedLeave(date(2025, time.June, 9), date(2025, time.June, 11)),
	}

	first := countPeriod(cal, records, leaves, start, end)
	second := countPeriod(cal, records, leaves, start, end)

	assert.Equal(t, first, second)
}

func TestNetSalary(t *testing.T) {
	gross := decimal.NewFromInt(26000)

	// Per-day rate 1000, 13 payable days.
	assert.True(t, netSalary(gross, 13, 26).Equal(decimal.NewFromInt(13000)))

	// Full month pays the full gross.
	assert.True(t, netSalary(gross, 26, 26).Equal(gross))

	// Zero payable days pays nothing.
	assert.True(t, netSalary(gross, 0, 26).Equal(decimal.Zero))

	// Rounded to two places only at the end: 1000/26*3 = 115.3846...
	got := netSalary(decimal.NewFromInt(1000), 3, 26)
	assert.Equal(t, "115.38", got.StringFixed(2))
}

func TestResolveRange(t *testing.T) {
	now := date(2025, time.June, 15)

	t.Run("both bounds absent defaults to current month", func(t *testing.T) {
		start, end := resolveRange(salary.RangeFilter{}, now)
		assert.Equal(t, date(2025, time.June, 1), start)
		assert.Equal(t, date(2025, time.June, 30), end)
	})

	t.Run("from only derives a one month window forward", func(t *testing.T) {
		from := date(2025, time.March, 10)
		start, end := resolveRange(salary.RangeFilter{From: &from}, now)
		assert.Equal(t, from, start)
		assert.Equal(t, date(2025, time.April, 9), end)
	})

	t.Run("to only derives a one month window backward", func(t *testing.T) {
		to := date(2025, time.March, 10)
		start, end := resolveRange(salary.RangeFilter{To: &to}, now)
		assert.Equal(t, date(2025, time.February, 11), start)
		assert.Equal(t, to, end)
	})

	t.Run("both bounds used as given", func(t *testing.T) {
		from := date(2025, time.January, 1)
		to := date(2025, time.February, 28)
		start, end := resolveRange(salary.RangeFilter{From: &from, To: &to}, now)
		assert.Equal(t, from, start)
		assert.Equal(t, to, end)
	})
}
