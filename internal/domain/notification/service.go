package notification

import "context"

type Service interface {
	// Notify records an in-app notification for the employee. Failures are
	// the caller's to log; a lost notification never fails the action that
	// produced it.
	Notify(ctx context.Context, employeeID int64, title, message string) error
	List(ctx context.Context, employeeID int64) (*ListNotificationResponse, error)
	MarkRead(ctx context.Context, id, employeeID int64) error
	MarkAllRead(ctx context.Context, employeeID int64) error

	// Subscribe opens a live stream of the employee's notifications.
	// The returned cleanup must run when the consumer disconnects.
	Subscribe(ctx context.Context, employeeID int64) (<-chan NotificationResponse, func())
}
