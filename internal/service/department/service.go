package department

import (
	"context"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/department"
)

type service struct {
	repo department.Repository
}

// NewDepartmentService creates a new department service
func NewDepartmentService(repo department.Repository) department.Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	dept, err := s.repo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return toResponse(dept), nil
}

func (s *service) Get(ctx context.Context, id int64) (department.DepartmentResponse, error) {
	dept, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toResponse(dept), nil
}

func (s *service) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, toResponse(dept))
	}

	return responses, nil
}

func (s *service) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := s.repo.Update(ctx, req); err != nil {
		return department.DepartmentResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func toResponse(dept department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		Description:   dept.Description,
		EmployeeCount: dept.EmployeeCount,
		CreatedAt:     dept.CreatedAt,
		UpdatedAt:     dept.UpdatedAt,
	}
}
