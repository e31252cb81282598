package report

import "time"

// AttendanceRow is one employee-day in the attendance report. Days where
// no attendance row exists are reported as Absent for working days and
// omitted for off days and holidays.
type AttendanceRow struct {
	EmployeeID   int64      `json:"employee_id"`
	EmployeeCode string     `json:"employee_code"`
	EmployeeName string     `json:"employee_name"`
	Date         time.Time  `json:"date"`
	Status       string     `json:"status"`
	CheckIn      *time.Time `json:"check_in,omitempty"`
	CheckOut     *time.Time `json:"check_out,omitempty"`
	WorkingHours *float64   `json:"working_hours,omitempty"`
}

// Format selects the export encoding of a report download.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

func ParseFormat(raw string) (Format, bool) {
	switch Format(raw) {
	case FormatCSV, FormatPDF:
		return Format(raw), true
	default:
		return "", false
	}
}

// Export is a rendered report ready to stream to the client.
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}
