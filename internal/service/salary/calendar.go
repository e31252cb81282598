package salary

import "time"

// HolidayFunc reports the holiday dates falling inside the given month.
// Injecting it keeps holiday rules out of the engine so they can vary by
// locale or year without touching the counting logic.
type HolidayFunc func(year int, month time.Month) []time.Time

// Calendar decides which dates count as working days. The weekly off day
// and the holiday table are both configured, not hard-coded.
type Calendar struct {
	weeklyOffDay time.Weekday
	holidays     HolidayFunc
}

func NewCalendar(weeklyOffDay time.Weekday, holidays HolidayFunc) Calendar {
	if holidays == nil {
		holidays = func(int, time.Month) []time.Time { return nil }
	}
	return Calendar{weeklyOffDay: weeklyOffDay, holidays: holidays}
}

func (c Calendar) IsWorkingDay(date time.Time) bool {
	if date.Weekday() == c.weeklyOffDay {
		return false
	}
	for _, h := range c.holidays(date.Year(), date.Month()) {
		if h.Year() == date.Year() && h.Month() == date.Month() && h.Day() == date.Day() {
			return false
		}
	}
	return true
}

// WorkingDaysBetween counts working days in [start, end] inclusive.
func (c Calendar) WorkingDaysBetween(start, end time.Time) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// FixedHolidays is the default public holiday table: New Year's Day,
// Independence Day (Mar 26), May Day and Victory Day (Dec 16).
func FixedHolidays(year int, month time.Month) []time.Time {
	var days []time.Time
	add := func(m time.Month, day int) {
		if m == month {
			days = append(days, time.Date(year, m, day, 0, 0, 0, 0, time.UTC))
		}
	}
	add(time.January, 1)
	add(time.March, 26)
	add(time.May, 1)
	add(time.December, 16)
	return days
}

// MonthPeriod returns the first and last day of the month containing
// anchor, at midnight UTC.
func MonthPeriod(anchor time.Time) (start, end time.Time) {
	start = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}
