package email

import (
	"testing"

	"github.com/smart-attendance/attendance-backend-go/internal/config"
)

func TestSendSkippedWhenDisabled(t *testing.T) {
	svc, err := NewEmailService(config.SMTPConfig{
		Host:    "smtp.example.com",
		Port:    587,
		From:    "no-reply@example.com",
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("NewEmailService() error = %v", err)
	}

	// With SMTP disabled no connection is attempted and no error returned.
	if err := svc.SendLeaveDecision("someone@example.com", "Jane Doe", "approved", "2025-06-01", "2025-06-03"); err != nil {
		t.Errorf("SendLeaveDecision() error = %v, want nil", err)
	}
	if err := svc.SendRegistrationDecision("someone@example.com", "Jane Doe", "approved"); err != nil {
		t.Errorf("SendRegistrationDecision() error = %v, want nil", err)
	}
}

func TestSendSkippedWithoutHost(t *testing.T) {
	svc, err := NewEmailService(config.SMTPConfig{Enabled: true})
	if err != nil {
		t.Fatalf("NewEmailService() error = %v", err)
	}

	if err := svc.SendLeaveDecision("someone@example.com", "Jane Doe", "rejected", "2025-06-01", "2025-06-01"); err != nil {
		t.Errorf("SendLeaveDecision() error = %v, want nil", err)
	}
}
