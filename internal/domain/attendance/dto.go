package attendance

import (
	"time"

	"github.com/smart-attendance/attendance-backend-go/internal/pkg/validator"
)

type TodayResponse struct {
	Date         string   `json:"date"`
	IsCheckedIn  bool     `json:"is_checked_in"`
	IsCheckedOut bool     `json:"is_checked_out"`
	CheckIn      *string  `json:"check_in,omitempty"`
	CheckOut     *string  `json:"check_out,omitempty"`
	WorkingHours *float64 `json:"working_hours,omitempty"`
	IsLate       bool     `json:"is_late"`
}

type AttendanceResponse struct {
	ID           int64    `json:"id"`
	EmployeeID   int64    `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	EmployeeCode *string  `json:"employee_code,omitempty"`
	Date         string   `json:"date"`
	CheckIn      *string  `json:"check_in,omitempty"`
	CheckOut     *string  `json:"check_out,omitempty"`
	WorkingHours *float64 `json:"working_hours,omitempty"`
	Status       Status   `json:"status"`
}

type HistoryFilter struct {
	From *time.Time
	To   *time.Time
	Days int
}

type HistoryStats struct {
	PresentDays     int     `json:"present_days"`
	LateDays        int     `json:"late_days"`
	AbsentDays      int     `json:"absent_days"`
	AvgWorkingHours float64 `json:"avg_working_hours"`
}

type HistoryResponse struct {
	Records []AttendanceResponse `json:"records"`
	Stats   HistoryStats         `json:"stats"`
}

type ReportFilter struct {
	EmployeeSearch string
	From           *time.Time
	To             *time.Time
}

func ParseReportFilter(search, from, to string) (ReportFilter, error) {
	filter := ReportFilter{EmployeeSearch: search}
	var errs validator.ValidationErrors
	if from != "" {
		d, ok := validator.IsValidDate(from)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "date_from", Message: "must be YYYY-MM-DD"})
		} else {
			filter.From = &d
		}
	}
	if to != "" {
		d, ok := validator.IsValidDate(to)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "date_to", Message: "must be YYYY-MM-DD"})
		} else {
			filter.To = &d
		}
	}
	if len(errs) > 0 {
		return ReportFilter{}, errs
	}
	return filter, nil
}
