package attendance

import "time"

type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	// WorkingHours is checkout minus checkin in hours, set on check-out.
	WorkingHours *float64
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// Status is the stored per-day classification. Absent rows are never
// written by the check-in workflow; a day without a row is implicitly
// absent when reports are built.
type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
)
