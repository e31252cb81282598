package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           int64
	EmployeeCode string
	Name         string
	Email        string
	DepartmentID *int64
	// Salary is the base monthly gross salary. An employee without a
	// configured salary is skipped by the salary engine entirely.
	Salary      *decimal.Decimal
	DateOfBirth *time.Time
	Gender      *string
	Nationality *string
	PhotoPath   *string
	Description *string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	DepartmentName *string
}

// Status is the admin-controlled registration lifecycle.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)
