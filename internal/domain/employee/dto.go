package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smart-attendance/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string           `json:"employee_code"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	DepartmentID *int64           `json:"department_id,omitempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	DateOfBirth  *string          `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Gender       *string          `json:"gender,omitempty"`
	Nationality  *string          `json:"nationality,omitempty"`
	Description  *string          `json:"description,omitempty"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee code is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           int64            `json:"-"`
	Name         *string          `json:"name,omitempty"`
	DepartmentID *int64           `json:"department_id,omitempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	DateOfBirth  *string          `json:"date_of_birth,omitempty"`
	Gender       *string          `json:"gender,omitempty"`
	Nationality  *string          `json:"nationality,omitempty"`
	Description  *string          `json:"description,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Search string
	Status *Status
	Page   int
	Limit  int
}

type EmployeeResponse struct {
	ID             int64            `json:"id"`
	EmployeeCode   string           `json:"employee_code"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	DepartmentID   *int64           `json:"department_id,omitempty"`
	DepartmentName *string          `json:"department_name,omitempty"`
	Salary         *decimal.Decimal `json:"salary,omitempty"`
	DateOfBirth    *string          `json:"date_of_birth,omitempty"`
	Gender         *string          `json:"gender,omitempty"`
	Nationality    *string          `json:"nationality,omitempty"`
	PhotoURL       *string          `json:"photo_url,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Status         Status           `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	TotalItems int64              `json:"total_items"`
}
