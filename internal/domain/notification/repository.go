package notification

import "context"

type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	ListByEmployee(ctx context.Context, employeeID int64, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, employeeID int64) (int, error)
	MarkRead(ctx context.Context, id, employeeID int64) error
	MarkAllRead(ctx context.Context, employeeID int64) error
}
