package leave

import "context"

type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	// Update and Delete are employee actions, allowed only while Pending.
	Update(ctx context.Context, req UpdateLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, id, employeeID int64) error
	MyLeaves(ctx context.Context, employeeID int64) ([]LeaveResponse, error)

	// Admin surface.
	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
	// Approve moves a pending request to Approved, notifies the employee,
	// and triggers a best-effort salary recompute for the month of the
	// leave's start date.
	Approve(ctx context.Context, id, decidedBy int64) (LeaveResponse, error)
	Reject(ctx context.Context, id, decidedBy int64) (LeaveResponse, error)
}
