package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrLeaveNotOwned         = errors.New("leave request belongs to another employee")
	ErrOverlappingLeave      = errors.New("an approved or pending leave already covers part of this range")
)
