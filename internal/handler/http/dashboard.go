package http

import (
	"net/http"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/dashboard"
	"github.com/smart-attendance/attendance-backend-go/internal/handler/http/response"
)

// DashboardHandler defines the dashboard handler interface
type DashboardHandler interface {
	AdminSummary(w http.ResponseWriter, r *http.Request)
	EmployeeSummary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	service dashboard.Service
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{service: service}
}

func (h *dashboardHandlerImpl) AdminSummary(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.AdminSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *dashboardHandlerImpl) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "No employee record linked to this account")
		return
	}

	resp, err := h.service.EmployeeSummary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
