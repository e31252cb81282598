package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/attendance"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/employee"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/leave"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/report"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/salary"
	salarysvc "github.com/smart-attendance/attendance-backend-go/internal/service/salary"
)

// statusLeave only appears in reports. It marks a working day covered by
// an approved leave instead of an attendance row.
const statusLeave = "Leave"

type service struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	leaveRepo      leave.Repository
	salaryService  salary.Service
	calendar       salarysvc.Calendar
}

// NewReportService creates a new report service
func NewReportService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	leaveRepo leave.Repository,
	salaryService salary.Service,
	calendar salarysvc.Calendar,
) report.Service {
	return &service{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		leaveRepo:      leaveRepo,
		salaryService:  salaryService,
		calendar:       calendar,
	}
}

// resolveWindow mirrors the salary report's range defaulting: no bounds
// means the current month, a single bound completes a one-month window.
func resolveWindow(from, to *time.Time, now time.Time) (start, end time.Time) {
	switch {
	case from == nil && to == nil:
		return salarysvc.MonthPeriod(now)
	case from != nil && to == nil:
		return *from, from.AddDate(0, 1, -1)
	case from == nil && to != nil:
		return to.AddDate(0, -1, 1), *to
	default:
		return *from, *to
	}
}

func (s *service) Attendance(ctx context.Context, filter attendance.ReportFilter) ([]report.AttendanceRow, error) {
	start, end := resolveWindow(filter.From, filter.To, time.Now())

	status := employee.StatusApproved
	employees, _, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{
		Search: filter.EmployeeSearch,
		Status: &status,
		Limit:  1000,
	})
	if err != nil {
		return nil, fmt.Errorf("attendance report: %w", err)
	}

	records, err := s.attendanceRepo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("attendance report: %w", err)
	}

	recorded := make(map[int64]map[string]*attendance.Attendance)
	for i := range records {
		rec := &records[i]
		if recorded[rec.EmployeeID] == nil {
			recorded[rec.EmployeeID] = make(map[string]*attendance.Attendance)
		}
		recorded[rec.EmployeeID][rec.Date.Format("2006-01-02")] = rec
	}

	var rows []report.AttendanceRow
	for _, emp := range employees {
		leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, emp.ID, start, end)
		if err != nil {
			return nil, fmt.Errorf("attendance report: %w", err)
		}
		onLeave := make(map[string]bool)
		for _, lv := range leaves {
			for d := lv.StartDate; !d.After(lv.EndDate); d = d.AddDate(0, 0, 1) {
				onLeave[d.Format("2006-01-02")] = true
			}
		}

		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			key := d.Format("2006-01-02")
			row := report.AttendanceRow{
				EmployeeID:   emp.ID,
				EmployeeCode: emp.EmployeeCode,
				EmployeeName: emp.Name,
				Date:         d,
			}

			if rec, ok := recorded[emp.ID][key]; ok {
				row.Status = string(rec.Status)
				row.CheckIn = rec.CheckIn
				row.CheckOut = rec.CheckOut
				row.WorkingHours = rec.WorkingHours
			} else if onLeave[key] {
				row.Status = statusLeave
			} else if s.calendar.IsWorkingDay(d) {
				// Absence is the absence of a record on a working day.
				row.Status = string(attendance.StatusAbsent)
			} else {
				continue
			}

			rows = append(rows, row)
		}
	}

	return rows, nil
}

func (s *service) ExportAttendance(ctx context.Context, filter attendance.ReportFilter, format report.Format) (*report.Export, error) {
	rows, err := s.Attendance(ctx, filter)
	if err != nil {
		return nil, err
	}

	switch format {
	case report.FormatCSV:
		return attendanceCSV(rows)
	case report.FormatPDF:
		return attendancePDF(rows)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (s *service) Salary(ctx context.Context, filter salary.RangeFilter) ([]salary.ReportRow, error) {
	return s.salaryService.ComputeForRange(ctx, filter)
}

func (s *service) ExportSalary(ctx context.Context, filter salary.RangeFilter, format report.Format) (*report.Export, error) {
	rows, err := s.Salary(ctx, filter)
	if err != nil {
		return nil, err
	}

	switch format {
	case report.FormatCSV:
		return salaryCSV(rows)
	case report.FormatPDF:
		return salaryPDF(rows)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func attendanceCSV(rows []report.AttendanceRow) (*report.Export, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"employee_code", "employee_name", "date", "status", "check_in", "check_out", "working_hours"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.EmployeeCode, row.EmployeeName, row.Date.Format("2006-01-02"), row.Status,
			formatTime(row.CheckIn), formatTime(row.CheckOut), formatHours(row.WorkingHours),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}

	return &report.Export{
		FileName:    "attendance_report.csv",
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

func attendancePDF(rows []report.AttendanceRow) (*report.Export, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Attendance Report")
	pdf.Ln(12)

	widths := []float64{30, 60, 28, 24, 35, 35, 25}
	headers := []string{"Code", "Name", "Date", "Status", "Check In", "Check Out", "Hours"}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		cells := []string{
			row.EmployeeCode, row.EmployeeName, row.Date.Format("2006-01-02"), row.Status,
			formatTime(row.CheckIn), formatTime(row.CheckOut), formatHours(row.WorkingHours),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return &report.Export{
		FileName:    "attendance_report.pdf",
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}

func salaryCSV(rows []salary.ReportRow) (*report.Export, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"employee_code", "employee_name", "gross_salary", "net_salary",
		"present", "late", "absent", "approved_leave_days", "working_days",
		"period_start", "period_end",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.EmployeeCode, row.EmployeeName,
			row.GrossSalary.StringFixed(2), row.NetSalary.StringFixed(2),
			fmt.Sprintf("%d", row.PresentCount), fmt.Sprintf("%d", row.LateCount),
			fmt.Sprintf("%d", row.AbsentCount), fmt.Sprintf("%d", row.ApprovedLeaveDays),
			fmt.Sprintf("%d", row.WorkingDays),
			row.PeriodStart.Format("2006-01-02"), row.PeriodEnd.Format("2006-01-02"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}

	return &report.Export{
		FileName:    "salary_report.csv",
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

func salaryPDF(rows []salary.ReportRow) (*report.Export, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Salary Report")
	pdf.Ln(8)
	if len(rows) > 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
			rows[0].PeriodStart.Format("2006-01-02"), rows[0].PeriodEnd.Format("2006-01-02")))
		pdf.Ln(10)
	}

	widths := []float64{28, 60, 30, 30, 20, 20, 20, 20, 22}
	headers := []string{"Code", "Name", "Gross", "Net", "Present", "Late", "Absent", "Leave", "Workdays"}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		cells := []string{
			row.EmployeeCode, row.EmployeeName,
			row.GrossSalary.StringFixed(2), row.NetSalary.StringFixed(2),
			fmt.Sprintf("%d", row.PresentCount), fmt.Sprintf("%d", row.LateCount),
			fmt.Sprintf("%d", row.AbsentCount), fmt.Sprintf("%d", row.ApprovedLeaveDays),
			fmt.Sprintf("%d", row.WorkingDays),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return &report.Export{
		FileName:    "salary_report.pdf",
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}

func formatHours(h *float64) string {
	if h == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *h)
}
