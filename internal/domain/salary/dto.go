package salary

import (
	"time"

	"github.com/smart-attendance/attendance-backend-go/internal/pkg/validator"
)

type RecomputeRequest struct {
	EmployeeID int64 `json:"employee_id"`
	Year       int   `json:"year"`
	Month      int   `json:"month"`
}

func (r RecomputeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthAnchor returns a date inside the requested month. The engine
// derives the full period from it.
func (r RecomputeRequest) MonthAnchor() time.Time {
	return time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC)
}

// RangeFilter holds the optional bounds for the on-demand salary report.
// Both bounds nil means the current month. A single bound given derives a
// one-month window from that bound.
type RangeFilter struct {
	From *time.Time
	To   *time.Time
}

// ParseRangeFilter reads the from/to query values in YYYY-MM-DD form.
// Empty values stay nil.
func ParseRangeFilter(from, to string) (RangeFilter, error) {
	var errs validator.ValidationErrors
	filter := RangeFilter{}

	if from != "" {
		parsed, ok := validator.IsValidDate(from)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "must be YYYY-MM-DD"})
		} else {
			filter.From = &parsed
		}
	}
	if to != "" {
		parsed, ok := validator.IsValidDate(to)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "must be YYYY-MM-DD"})
		} else {
			filter.To = &parsed
		}
	}

	if len(errs) > 0 {
		return RangeFilter{}, errs
	}
	return filter, nil
}

type SnapshotResponse struct {
	ID                int64   `json:"id"`
	EmployeeID        int64   `json:"employee_id"`
	EmployeeCode      string  `json:"employee_code"`
	EmployeeName      string  `json:"employee_name"`
	GrossSalary       string  `json:"gross_salary"`
	NetSalary         string  `json:"net_salary"`
	PresentCount      int     `json:"present_count"`
	LateCount         int     `json:"late_count"`
	AbsentCount       int     `json:"absent_count"`
	ApprovedLeaveDays int     `json:"approved_leave_days"`
	WorkingDays       int     `json:"working_days"`
	SalaryMonth       string  `json:"salary_month"`
	Status            Status  `json:"status"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         *string `json:"updated_at,omitempty"`
}

func ToSnapshotResponse(s *Snapshot) SnapshotResponse {
	resp := SnapshotResponse{
		ID:                s.ID,
		EmployeeID:        s.EmployeeID,
		EmployeeCode:      s.EmployeeCode,
		EmployeeName:      s.EmployeeName,
		GrossSalary:       s.GrossSalary.StringFixed(2),
		NetSalary:         s.NetSalary.StringFixed(2),
		PresentCount:      s.PresentCount,
		LateCount:         s.LateCount,
		AbsentCount:       s.AbsentCount,
		ApprovedLeaveDays: s.ApprovedLeaveDays,
		WorkingDays:       s.WorkingDays,
		SalaryMonth:       s.SalaryMonth.Format("2006-01-02"),
		Status:            s.Status,
		CreatedAt:         s.CreatedAt.Format(time.RFC3339),
	}
	if s.UpdatedAt != nil {
		updated := s.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updated
	}
	return resp
}
