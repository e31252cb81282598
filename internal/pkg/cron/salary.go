package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/salary"
)

// SalaryJobs keeps stored snapshots current without anyone pressing a
// button. Check-ins and leave approvals already recompute the affected
// employee, so these jobs only have to catch drift: manual row edits,
// days that passed with no events, and the close of the previous month.
type SalaryJobs struct {
	salaryService salary.Service
}

func NewSalaryJobs(salaryService salary.Service) *SalaryJobs {
	return &SalaryJobs{salaryService: salaryService}
}

func (j *SalaryJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("recompute_current_month_salaries", 1*time.Hour, j.RecomputeCurrentMonth)
	scheduler.AddJob("finalize_previous_month_salaries", 1*time.Hour, j.FinalizePreviousMonth)
}

// RecomputeCurrentMonth refreshes every salaried employee's snapshot for
// the running month. Only acts at midnight (00:00-00:59 UTC).
func (j *SalaryJobs) RecomputeCurrentMonth(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting current month salary recompute")
	if err := j.salaryService.RecomputeAll(ctx, now); err != nil {
		return err
	}
	slog.Info("Cron: Current month salary recompute completed")
	return nil
}

// FinalizePreviousMonth recomputes the month that just ended, so the
// closing snapshot includes any leave decisions made after the last
// daily run. Only acts on the first day of the month at midnight.
func (j *SalaryJobs) FinalizePreviousMonth(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Day() != 1 || now.Hour() != 0 {
		return nil
	}

	previous := now.AddDate(0, -1, 0)
	slog.Info("Cron: Finalizing previous month salaries", "month", previous.Format("2006-01"))
	if err := j.salaryService.RecomputeAll(ctx, previous); err != nil {
		return err
	}
	slog.Info("Cron: Previous month salaries finalized")
	return nil
}
