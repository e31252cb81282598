package notification

import "time"

type Notification struct {
	ID         int64
	EmployeeID int64
	Title      string
	Message    string
	IsRead     bool
	CreatedAt  time.Time
}
