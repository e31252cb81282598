package attendance

import "errors"

var (
	ErrAlreadyCheckedIn   = errors.New("you have already checked in today")
	ErrNotCheckedIn       = errors.New("you must check in before checking out")
	ErrAlreadyCheckedOut  = errors.New("you have already checked out today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
