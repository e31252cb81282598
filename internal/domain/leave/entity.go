package leave

import "time"

type Leave struct {
	ID         int64
	EmployeeID int64
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	DecidedAt  *time.Time
	DecidedBy  *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// Status transitions one way: Pending -> Approved | Rejected.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)
