package task

import (
	"time"

	"github.com/smart-attendance/attendance-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	EmployeeID int64   `json:"-"`
	Project    *string `json:"project,omitempty"`
	Shift      *string `json:"shift,omitempty"`
	Activity   string  `json:"activity"`
	DueDate    *string `json:"due_date,omitempty"`
}

func (r CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Activity) {
		errs = append(errs, validator.ValidationError{Field: "activity", Message: "activity is required"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due date must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskRequest struct {
	ID         int64   `json:"-"`
	EmployeeID int64   `json:"-"`
	Project    *string `json:"project,omitempty"`
	Shift      *string `json:"shift,omitempty"`
	Activity   *string `json:"activity,omitempty"`
	Status     *Status `json:"status,omitempty"`
	DueDate    *string `json:"due_date,omitempty"`
}

func (r UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Activity != nil && validator.IsEmpty(*r.Activity) {
		errs = append(errs, validator.ValidationError{Field: "activity", Message: "activity must not be empty"})
	}
	if r.Status != nil && !ValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Pending, InProgress, Completed or Cancelled"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due date must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaskResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	EmployeeCode string  `json:"employee_code,omitempty"`
	Project      *string `json:"project,omitempty"`
	Shift        *string `json:"shift,omitempty"`
	Activity     string  `json:"activity"`
	Status       Status  `json:"status"`
	DueDate      *string `json:"due_date,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func ToTaskResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:           t.ID,
		EmployeeID:   t.EmployeeID,
		EmployeeName: t.EmployeeName,
		EmployeeCode: t.EmployeeCode,
		Project:      t.Project,
		Shift:        t.Shift,
		Activity:     t.Activity,
		Status:       t.Status,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		due := t.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	return resp
}
