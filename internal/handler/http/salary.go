package http

import (
	"net/http"
	"time"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/salary"
	"github.com/smart-attendance/attendance-backend-go/internal/handler/http/response"
)

// SalaryHandler defines the salary handler interface
type SalaryHandler interface {
	Recompute(w http.ResponseWriter, r *http.Request)
	RecomputeAll(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	MyHistory(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	service salary.Service
}

// NewSalaryHandler creates a new salary handler
func NewSalaryHandler(service salary.Service) SalaryHandler {
	return &salaryHandlerImpl{service: service}
}

func (h *salaryHandlerImpl) Recompute(w http.ResponseWriter, r *http.Request) {
	var req salary.RecomputeRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.service.Recompute(r.Context(), req.EmployeeID, req.MonthAnchor()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary recomputed", nil)
}

func (h *salaryHandlerImpl) RecomputeAll(w http.ResponseWriter, r *http.Request) {
	anchor := time.Now().UTC()
	year := queryInt(r, "year", anchor.Year())
	month := queryInt(r, "month", int(anchor.Month()))
	if month < 1 || month > 12 {
		response.BadRequest(w, "Month must be between 1 and 12", nil)
		return
	}
	anchor = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	if err := h.service.RecomputeAll(r.Context(), anchor); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salaries recomputed for all employees", nil)
}

func (h *salaryHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	year := queryInt(r, "year", now.Year())
	month := queryInt(r, "month", int(now.Month()))
	if month < 1 || month > 12 {
		response.BadRequest(w, "Month must be between 1 and 12", nil)
		return
	}

	resp, err := h.service.ListByMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *salaryHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID, err := urlParamInt64(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	resp, err := h.service.History(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *salaryHandlerImpl) MyHistory(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "No employee record linked to this account")
		return
	}

	resp, err := h.service.History(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *salaryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt64(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid snapshot id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary snapshot deleted", nil)
}
