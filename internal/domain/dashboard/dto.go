package dashboard

import "github.com/shopspring/decimal"

// AdminSummary is the admin landing page aggregate. Counts are for the
// current day unless named otherwise.
type AdminSummary struct {
	TotalEmployees   int `json:"total_employees"`
	PendingEmployees int `json:"pending_employees"`
	TotalDepartments int `json:"total_departments"`
	PresentToday     int `json:"present_today"`
	LateToday        int `json:"late_today"`
	AbsentToday      int `json:"absent_today"`
	PendingLeaves    int `json:"pending_leaves"`
}

type EmployeeSummary struct {
	PresentThisMonth  int  `json:"present_this_month"`
	LateThisMonth     int  `json:"late_this_month"`
	AbsentThisMonth   int  `json:"absent_this_month"`
	ApprovedLeaveDays int  `json:"approved_leave_days"`
	PendingLeaves     int  `json:"pending_leaves"`
	CheckedInToday    bool `json:"checked_in_today"`
	CheckedOutToday   bool `json:"checked_out_today"`

	// Most recently closed month with a computed snapshot, if any.
	LastNetSalary   *decimal.Decimal `json:"last_net_salary,omitempty"`
	LastSalaryMonth *string          `json:"last_salary_month,omitempty"`
}
