package attendance

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/attendance"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/salary"
)

type service struct {
	repo          attendance.Repository
	salaryService salary.Service
	cutoffHour    int
	cutoffMinute  int
}

// NewAttendanceService creates a new attendance service. cutoffHour and
// cutoffMinute define the late boundary: a check-in strictly after that
// time of day is classified Late.
func NewAttendanceService(repo attendance.Repository, salaryService salary.Service, cutoffHour, cutoffMinute int) attendance.Service {
	return &service{
		repo:          repo,
		salaryService: salaryService,
		cutoffHour:    cutoffHour,
		cutoffMinute:  cutoffMinute,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *service) classify(checkIn time.Time) attendance.Status {
	cutoff := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(),
		s.cutoffHour, s.cutoffMinute, 0, 0, checkIn.Location())
	if checkIn.After(cutoff) {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}

func (s *service) CheckIn(ctx context.Context, employeeID int64) (attendance.TodayResponse, error) {
	now := time.Now()
	today := truncateToDay(now)

	existing, err := s.repo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.TodayResponse{}, err
	}
	if existing != nil && existing.CheckIn != nil {
		return attendance.TodayResponse{}, attendance.ErrAlreadyCheckedIn
	}

	var att attendance.Attendance
	if existing == nil {
		att, err = s.repo.Create(ctx, attendance.Attendance{
			EmployeeID: employeeID,
			Date:       today,
			CheckIn:    &now,
			Status:     s.classify(now),
		})
	} else {
		existing.CheckIn = &now
		existing.Status = s.classify(now)
		att = *existing
		err = s.repo.Update(ctx, att)
	}
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	// Check-in succeeded; the snapshot refresh is best-effort and must
	// never fail the check-in itself.
	if err := s.salaryService.Recompute(ctx, employeeID, today); err != nil {
		slog.Error("Failed to recompute salary after check-in",
			"employee_id", employeeID,
			"month", today.Format("2006-01"),
			"error", err,
		)
	}

	return toTodayResponse(&att), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID int64) (attendance.TodayResponse, error) {
	now := time.Now()
	today := truncateToDay(now)

	existing, err := s.repo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.TodayResponse{}, err
	}
	if existing == nil || existing.CheckIn == nil {
		return attendance.TodayResponse{}, attendance.ErrNotCheckedIn
	}
	if existing.CheckOut != nil {
		return attendance.TodayResponse{}, attendance.ErrAlreadyCheckedOut
	}

	hours := math.Round(now.Sub(*existing.CheckIn).Hours()*100) / 100
	existing.CheckOut = &now
	existing.WorkingHours = &hours

	if err := s.repo.Update(ctx, *existing); err != nil {
		return attendance.TodayResponse{}, err
	}

	return toTodayResponse(existing), nil
}

func (s *service) Today(ctx context.Context, employeeID int64) (attendance.TodayResponse, error) {
	today := truncateToDay(time.Now())

	existing, err := s.repo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.TodayResponse{}, err
	}
	if existing == nil {
		return attendance.TodayResponse{Date: today.Format("2006-01-02")}, nil
	}

	return toTodayResponse(existing), nil
}

func (s *service) History(ctx context.Context, employeeID int64, filter attendance.HistoryFilter) (attendance.HistoryResponse, error) {
	end := truncateToDay(time.Now())
	days := filter.Days
	if days <= 0 {
		days = 30
	}
	start := end.AddDate(0, 0, -(days - 1))

	if filter.From != nil {
		start = *filter.From
	}
	if filter.To != nil {
		end = *filter.To
	}

	records, err := s.repo.ListByEmployeeInRange(ctx, employeeID, start, end)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	resp := attendance.HistoryResponse{
		Records: make([]attendance.AttendanceResponse, 0, len(records)),
	}
	var hoursSum float64
	var hoursCount int
	for i := range records {
		rec := &records[i]
		resp.Records = append(resp.Records, toAttendanceResponse(rec))

		switch rec.Status {
		case attendance.StatusPresent:
			resp.Stats.PresentDays++
		case attendance.StatusLate:
			resp.Stats.LateDays++
		case attendance.StatusAbsent:
			resp.Stats.AbsentDays++
		}
		if rec.WorkingHours != nil {
			hoursSum += *rec.WorkingHours
			hoursCount++
		}
	}
	if hoursCount > 0 {
		resp.Stats.AvgWorkingHours = math.Round(hoursSum/float64(hoursCount)*100) / 100
	}

	return resp, nil
}

func toTodayResponse(att *attendance.Attendance) attendance.TodayResponse {
	resp := attendance.TodayResponse{
		Date:         att.Date.Format("2006-01-02"),
		IsCheckedIn:  att.CheckIn != nil,
		IsCheckedOut: att.CheckOut != nil,
		WorkingHours: att.WorkingHours,
		IsLate:       att.Status == attendance.StatusLate,
	}
	if att.CheckIn != nil {
		checkIn := att.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &checkIn
	}
	if att.CheckOut != nil {
		checkOut := att.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &checkOut
	}
	return resp
}

func toAttendanceResponse(att *attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		EmployeeCode: att.EmployeeCode,
		Date:         att.Date.Format("2006-01-02"),
		WorkingHours: att.WorkingHours,
		Status:       att.Status,
	}
	if att.CheckIn != nil {
		checkIn := att.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &checkIn
	}
	if att.CheckOut != nil {
		checkOut := att.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &checkOut
	}
	return resp
}
