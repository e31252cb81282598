package employee

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/google/uuid"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/employee"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/notification"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/email"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/storage"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/validator"
)

type service struct {
	repo         employee.Repository
	notifier     notification.Service
	emailService email.EmailService
	files        storage.FileStorage
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(
	repo employee.Repository,
	notifier notification.Service,
	emailService email.EmailService,
	files storage.FileStorage,
) employee.Service {
	return &service{
		repo:         repo,
		notifier:     notifier,
		emailService: emailService,
		files:        files,
	}
}

func (s *service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		Salary:       req.Salary,
		Gender:       req.Gender,
		Nationality:  req.Nationality,
		Description:  req.Description,
		// Admin-created employees skip the approval queue.
		Status: employee.StatusApproved,
	}
	if req.DateOfBirth != nil {
		dob, _ := validator.IsValidDate(*req.DateOfBirth)
		emp.DateOfBirth = &dob
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.toResponse(created), nil
}

func (s *service) Get(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(emp), nil
}

func (s *service) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	employees, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, s.toResponse(emp))
	}

	return employee.ListEmployeeResponse{Employees: responses, TotalItems: total}, nil
}

func (s *service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.repo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Approve(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	return s.decide(ctx, id, employee.StatusApproved)
}

func (s *service) Reject(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	return s.decide(ctx, id, employee.StatusRejected)
}

func (s *service) decide(ctx context.Context, id int64, status employee.Status) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if emp.Status != employee.StatusPending {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotPending
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return employee.EmployeeResponse{}, err
	}
	emp.Status = status

	// The decision itself succeeded; notification and email failures are
	// logged, not surfaced.
	message := fmt.Sprintf("Your registration has been %s.", status)
	if err := s.notifier.Notify(ctx, emp.ID, "Registration decision", message); err != nil {
		slog.Error("Failed to create registration notification", "employee_id", emp.ID, "error", err)
	}
	if err := s.emailService.SendRegistrationDecision(emp.Email, emp.Name, string(status)); err != nil {
		slog.Error("Failed to send registration email", "employee_id", emp.ID, "error", err)
	}

	return s.toResponse(emp), nil
}

var allowedPhotoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

func (s *service) UploadPhoto(ctx context.Context, id int64, file io.Reader, fileName, contentType string) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	ext, ok := allowedPhotoTypes[contentType]
	if !ok {
		return employee.EmployeeResponse{}, employee.ErrInvalidPhotoType
	}

	photoPath := path.Join("photos", fmt.Sprintf("%d", emp.ID), uuid.NewString()+ext)
	storedPath, err := s.files.Upload(ctx, file, photoPath, contentType)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("upload photo: %w", err)
	}

	if err := s.repo.UpdatePhotoPath(ctx, emp.ID, storedPath); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Old photo is best-effort cleanup.
	if emp.PhotoPath != nil {
		if err := s.files.Delete(ctx, *emp.PhotoPath); err != nil {
			slog.Warn("Failed to delete previous photo", "employee_id", emp.ID, "error", err)
		}
	}

	emp.PhotoPath = &storedPath
	return s.toResponse(emp), nil
}

func (s *service) toResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:             emp.ID,
		EmployeeCode:   emp.EmployeeCode,
		Name:           emp.Name,
		Email:          emp.Email,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		Salary:         emp.Salary,
		Gender:         emp.Gender,
		Nationality:    emp.Nationality,
		Description:    emp.Description,
		Status:         emp.Status,
		CreatedAt:      emp.CreatedAt,
	}
	if emp.DateOfBirth != nil {
		dob := emp.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}
	if emp.PhotoPath != nil {
		url := s.files.URL(*emp.PhotoPath)
		resp.PhotoURL = &url
	}
	return resp
}
