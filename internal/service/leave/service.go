package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/employee"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/leave"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/notification"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/salary"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/email"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/validator"
)

type service struct {
	repo          leave.Repository
	employeeRepo  employee.Repository
	notifier      notification.Service
	emailService  email.EmailService
	salaryService salary.Service
}

// NewLeaveService creates a new leave service
func NewLeaveService(
	repo leave.Repository,
	employeeRepo employee.Repository,
	notifier notification.Service,
	emailService email.EmailService,
	salaryService salary.Service,
) leave.Service {
	return &service{
		repo:          repo,
		employeeRepo:  employeeRepo,
		notifier:      notifier,
		emailService:  emailService,
		salaryService: salaryService,
	}
}

func (s *service) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	start, end := req.Dates()

	lv, err := s.repo.Create(ctx, leave.Leave{
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(lv), nil
}

func (s *service) Update(ctx context.Context, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	lv, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if lv.EmployeeID != req.EmployeeID {
		return leave.LeaveResponse{}, leave.ErrLeaveNotOwned
	}
	if lv.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	if req.LeaveType != nil {
		lv.LeaveType = *req.LeaveType
	}
	if req.StartDate != nil {
		start, _ := validator.IsValidDate(*req.StartDate)
		lv.StartDate = start
	}
	if req.EndDate != nil {
		end, _ := validator.IsValidDate(*req.EndDate)
		lv.EndDate = end
	}
	if req.Reason != nil {
		lv.Reason = *req.Reason
	}
	if lv.EndDate.Before(lv.StartDate) {
		return leave.LeaveResponse{}, validator.ValidationErrors{
			{Field: "end_date", Message: "end date must not be before start date"},
		}
	}

	if err := s.repo.Update(ctx, lv); err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(lv), nil
}

func (s *service) Delete(ctx context.Context, id, employeeID int64) error {
	lv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lv.EmployeeID != employeeID {
		return leave.ErrLeaveNotOwned
	}
	if lv.Status != leave.StatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) MyLeaves(ctx context.Context, employeeID int64) ([]leave.LeaveResponse, error) {
	leaves, _, err := s.repo.List(ctx, leave.LeaveFilter{EmployeeID: &employeeID, Limit: 100})
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		responses = append(responses, toResponse(lv))
	}

	return responses, nil
}

func (s *service) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	leaves, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		responses = append(responses, toResponse(lv))
	}

	return leave.ListLeaveResponse{Leaves: responses, TotalItems: total}, nil
}

func (s *service) Approve(ctx context.Context, id, decidedBy int64) (leave.LeaveResponse, error) {
	lv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if lv.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	// No two approved leaves for one employee may overlap; enforced here
	// because the engine counts approved days per calendar day.
	overlap, err := s.repo.HasApprovedOverlap(ctx, lv.EmployeeID, lv.StartDate, lv.EndDate, lv.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if overlap {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	now := time.Now()
	if err := s.repo.UpdateStatus(ctx, id, leave.StatusApproved, decidedBy, now); err != nil {
		return leave.LeaveResponse{}, err
	}
	lv.Status = leave.StatusApproved
	lv.DecidedAt = &now
	lv.DecidedBy = &decidedBy

	s.announce(ctx, lv)

	// Approval succeeded; the snapshot refresh for the month of the
	// leave's start date is best-effort.
	if err := s.salaryService.Recompute(ctx, lv.EmployeeID, lv.StartDate); err != nil {
		slog.Error("Failed to recompute salary after leave approval",
			"employee_id", lv.EmployeeID,
			"month", lv.StartDate.Format("2006-01"),
			"error", err,
		)
	}

	return toResponse(lv), nil
}

func (s *service) Reject(ctx context.Context, id, decidedBy int64) (leave.LeaveResponse, error) {
	lv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if lv.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	now := time.Now()
	if err := s.repo.UpdateStatus(ctx, id, leave.StatusRejected, decidedBy, now); err != nil {
		return leave.LeaveResponse{}, err
	}
	lv.Status = leave.StatusRejected
	lv.DecidedAt = &now
	lv.DecidedBy = &decidedBy

	s.announce(ctx, lv)

	return toResponse(lv), nil
}

// announce pushes the decision to the employee's inbox and mailbox.
// Failures are logged only; the decision itself already committed.
func (s *service) announce(ctx context.Context, lv leave.Leave) {
	message := fmt.Sprintf("Your leave request from %s to %s has been %s.",
		lv.StartDate.Format("2006-01-02"), lv.EndDate.Format("2006-01-02"), lv.Status)
	if err := s.notifier.Notify(ctx, lv.EmployeeID, "Leave request decision", message); err != nil {
		slog.Error("Failed to create leave notification", "leave_id", lv.ID, "error", err)
	}

	emp, err := s.employeeRepo.GetByID(ctx, lv.EmployeeID)
	if err != nil {
		slog.Error("Failed to load employee for leave email", "leave_id", lv.ID, "error", err)
		return
	}
	if err := s.emailService.SendLeaveDecision(
		emp.Email, emp.Name, string(lv.Status),
		lv.StartDate.Format("2006-01-02"), lv.EndDate.Format("2006-01-02"),
	); err != nil {
		slog.Error("Failed to send leave email", "leave_id", lv.ID, "error", err)
	}
}

func toResponse(lv leave.Leave) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:           lv.ID,
		EmployeeID:   lv.EmployeeID,
		EmployeeName: lv.EmployeeName,
		EmployeeCode: lv.EmployeeCode,
		LeaveType:    lv.LeaveType,
		StartDate:    lv.StartDate.Format("2006-01-02"),
		EndDate:      lv.EndDate.Format("2006-01-02"),
		Reason:       lv.Reason,
		Status:       lv.Status,
	}
	if lv.DecidedAt != nil {
		decided := lv.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decided
	}
	return resp
}
