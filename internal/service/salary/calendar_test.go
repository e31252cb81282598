package salary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalendarIsWorkingDay(t *testing.T) {
	cal := NewCalendar(time.Friday, FixedHolidays)

	// 2025-06-06 is a Friday.
	assert.False(t, cal.IsWorkingDay(date(2025, time.June, 6)))
	// Saturday and Sunday are regular working days here.
	assert.True(t, cal.IsWorkingDay(date(2025, time.June, 7)))
	assert.True(t, cal.IsWorkingDay(date(2025, time.June, 8)))

	// Fixed holidays.
	assert.False(t, cal.IsWorkingDay(date(2025, time.January, 1)))
	assert.False(t, cal.IsWorkingDay(date(2025, time.March, 26)))
	assert.False(t, cal.IsWorkingDay(date(2025, time.May, 1)))
	assert.False(t, cal.IsWorkingDay(date(2025, time.December, 16)))
}

func TestCalendarWorkingDaysBetween(t *testing.T) {
	cal := NewCalendar(time.Friday, FixedHolidays)

	// June 2025 has 30 days and 4 Fridays, no fixed holidays.
	start, end := MonthPeriod(date(2025, time.June, 15))
	assert.Equal(t, date(2025, time.June, 1), start)
	assert.Equal(t, date(2025, time.June, 30), end)
	assert.Equal(t, 26, cal.WorkingDaysBetween(start, end))

	// December 2025: 31 days, 4 Fridays, Dec 16 is a holiday (Tuesday).
	start, end = MonthPeriod(date(2025, time.December, 1))
	assert.Equal(t, 26, cal.WorkingDaysBetween(start, end))
}

func TestCalendarNilHolidayFunc(t *testing.T) {
	cal := NewCalendar(time.Friday, nil)
	assert.True(t, cal.IsWorkingDay(date(2025, time.January, 1)))
}

func TestFixedHolidaysFiltersByMonth(t *testing.T) {
	assert.Len(t, FixedHolidays(2025, time.March), 1)
	assert.Equal(t, date(2025, time.March, 26), FixedHolidays(2025, time.March)[0])
	assert.Empty(t, FixedHolidays(2025, time.June))
}
