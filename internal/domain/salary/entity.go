package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is the persisted monthly salary computation for one employee.
// SalaryMonth is always the first day of the month; (EmployeeID,
// SalaryMonth) is the natural key and at most one row exists per pair.
//
// EmployeeCode and EmployeeName are denormalized on purpose: they are
// recopied from the employee row on every write and record the employee's
// identity as of the pay period, not a live join.
type Snapshot struct {
	ID                int64
	EmployeeID        int64
	EmployeeCode      string
	EmployeeName      string
	GrossSalary       decimal.Decimal
	NetSalary         decimal.Decimal
	PresentCount      int
	LateCount         int
	AbsentCount       int
	ApprovedLeaveDays int
	WorkingDays       int
	SalaryMonth       time.Time
	Status            Status
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
)

// ReportRow is a non-persisted salary figure computed for report viewing.
// It carries the same fields the snapshot does so the live report and the
// stored snapshot can never disagree on shape.
type ReportRow struct {
	EmployeeID        int64           `json:"employee_id"`
	EmployeeCode      string          `json:"employee_code"`
	EmployeeName      string          `json:"employee_name"`
	GrossSalary       decimal.Decimal `json:"gross_salary"`
	NetSalary         decimal.Decimal `json:"net_salary"`
	PresentCount      int             `json:"present_count"`
	LateCount         int             `json:"late_count"`
	AbsentCount       int             `json:"absent_count"`
	ApprovedLeaveDays int             `json:"approved_leave_days"`
	WorkingDays       int             `json:"working_days"`
	PeriodStart       time.Time       `json:"period_start"`
	PeriodEnd         time.Time       `json:"period_end"`
}
