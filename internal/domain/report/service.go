package report

import (
	"context"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/attendance"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/salary"
)

type Service interface {
	// Attendance builds the per-day attendance matrix over the filter
	// window, filling working days without a record as Absent.
	Attendance(ctx context.Context, filter attendance.ReportFilter) ([]AttendanceRow, error)
	ExportAttendance(ctx context.Context, filter attendance.ReportFilter, format Format) (*Export, error)

	Salary(ctx context.Context, filter salary.RangeFilter) ([]salary.ReportRow, error)
	ExportSalary(ctx context.Context, filter salary.RangeFilter, format Format) (*Export, error)
}
