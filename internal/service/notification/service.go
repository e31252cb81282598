package notification

import (
	"context"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/notification"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/sse"
)

type service struct {
	repo notification.Repository
	hub  *sse.Hub
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo notification.Repository, hub *sse.Hub) notification.Service {
	return &service{repo: repo, hub: hub}
}

func (s *service) Notify(ctx context.Context, employeeID int64, title, message string) error {
	n := &notification.Notification{
		EmployeeID: employeeID,
		Title:      title,
		Message:    message,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	s.hub.Publish(employeeID, sse.Event{
		Event: "notification",
		Data:  notification.ToNotificationResponse(n),
	})
	return nil
}

func (s *service) List(ctx context.Context, employeeID int64) (*notification.ListNotificationResponse, error) {
	notifications, err := s.repo.ListByEmployee(ctx, employeeID, 50)
	if err != nil {
		return nil, err
	}

	unread, err := s.repo.CountUnread(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := &notification.ListNotificationResponse{
		Notifications: make([]notification.NotificationResponse, 0, len(notifications)),
		UnreadCount:   unread,
	}
	for i := range notifications {
		resp.Notifications = append(resp.Notifications, notification.ToNotificationResponse(&notifications[i]))
	}

	return resp, nil
}

func (s *service) MarkRead(ctx context.Context, id, employeeID int64) error {
	return s.repo.MarkRead(ctx, id, employeeID)
}

func (s *service) MarkAllRead(ctx context.Context, employeeID int64) error {
	return s.repo.MarkAllRead(ctx, employeeID)
}

func (s *service) Subscribe(ctx context.Context, employeeID int64) (<-chan notification.NotificationResponse, func()) {
	ch, cleanup := s.hub.Subscribe(employeeID)

	out := make(chan notification.NotificationResponse, 10)

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				if resp, ok := event.Data.(notification.NotificationResponse); ok {
					out <- resp
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cleanup
}
