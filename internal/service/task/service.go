package task

import (
	"context"
	"fmt"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/task"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/validator"
)

type service struct {
	repo task.Repository
}

// NewTaskService creates a new task service
func NewTaskService(repo task.Repository) task.Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	t := task.Task{
		EmployeeID: req.EmployeeID,
		Project:    req.Project,
		Shift:      req.Shift,
		Activity:   req.Activity,
		Status:     task.StatusPending,
	}
	if req.DueDate != nil {
		due, _ := validator.IsValidDate(*req.DueDate)
		t.DueDate = &due
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("create task: %w", err)
	}

	return task.ToTaskResponse(created), nil
}

func (s *service) MyTasks(ctx context.Context, employeeID int64) ([]task.TaskResponse, error) {
	tasks, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return toResponses(tasks), nil
}

func (s *service) List(ctx context.Context) ([]task.TaskResponse, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return toResponses(tasks), nil
}

func (s *service) Update(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if t.EmployeeID != req.EmployeeID {
		return task.TaskResponse{}, task.ErrTaskNotOwned
	}

	if req.Project != nil {
		t.Project = req.Project
	}
	if req.Shift != nil {
		t.Shift = req.Shift
	}
	if req.Activity != nil {
		t.Activity = *req.Activity
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.DueDate != nil {
		due, _ := validator.IsValidDate(*req.DueDate)
		t.DueDate = &due
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToTaskResponse(t), nil
}

func (s *service) Delete(ctx context.Context, id, employeeID int64) error {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.EmployeeID != employeeID {
		return task.ErrTaskNotOwned
	}

	return s.repo.Delete(ctx, id)
}

func toResponses(tasks []task.Task) []task.TaskResponse {
	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, task.ToTaskResponse(t))
	}
	return responses
}
