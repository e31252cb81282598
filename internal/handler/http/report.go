package http

import (
	"net/http"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/attendance"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/report"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/salary"
	"github.com/smart-attendance/attendance-backend-go/internal/handler/http/response"
)

// ReportHandler defines the report handler interface
type ReportHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
	ExportAttendance(w http.ResponseWriter, r *http.Request)
	Salary(w http.ResponseWriter, r *http.Request)
	ExportSalary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	service report.Service
}

// NewReportHandler creates a new report handler
func NewReportHandler(service report.Service) ReportHandler {
	return &reportHandlerImpl{service: service}
}

func (h *reportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter, err := attendance.ParseReportFilter(query.Get("search"), query.Get("date_from"), query.Get("date_to"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.service.Attendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter, err := attendance.ParseReportFilter(query.Get("search"), query.Get("date_from"), query.Get("date_to"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	format, ok := report.ParseFormat(query.Get("format"))
	if !ok {
		response.BadRequest(w, "Format must be csv or pdf", nil)
		return
	}

	export, err := h.service.ExportAttendance(r.Context(), filter, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, export.FileName, export.ContentType, export.Data)
}

func (h *reportHandlerImpl) Salary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter, err := salary.ParseRangeFilter(query.Get("from"), query.Get("to"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.service.Salary(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

func (h *reportHandlerImpl) ExportSalary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter, err := salary.ParseRangeFilter(query.Get("from"), query.Get("to"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	format, ok := report.ParseFormat(query.Get("format"))
	if !ok {
		response.BadRequest(w, "Format must be csv or pdf", nil)
		return
	}

	export, err := h.service.ExportSalary(r.Context(), filter, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, export.FileName, export.ContentType, export.Data)
}
