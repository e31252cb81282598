package http

import (
	"net/http"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/attendance"
	"github.com/smart-attendance/attendance-backend-go/internal/handler/http/response"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/validator"
)

// AttendanceHandler defines the attendance handler interface
type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	service attendance.Service
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(service attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{service: service}
}

func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "No employee record linked to this account")
		return
	}

	resp, err := h.service.CheckIn(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked in", resp)
}

func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "No employee record linked to this account")
		return
	}

	resp, err := h.service.CheckOut(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", resp)
}

func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "No employee record linked to this account")
		return
	}

	resp, err := h.service.Today(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "No employee record linked to this account")
		return
	}

	filter := attendance.HistoryFilter{Days: queryInt(r, "days", 30)}
	if raw := r.URL.Query().Get("from"); raw != "" {
		if d, ok := validator.IsValidDate(raw); ok {
			filter.From = &d
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		if d, ok := validator.IsValidDate(raw); ok {
			filter.To = &d
		}
	}

	resp, err := h.service.History(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
