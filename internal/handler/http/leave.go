package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/leave"
	"github.com/smart-attendance/attendance-backend-go/internal/handler/http/response"
)

// LeaveHandler defines the leave handler interface
type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	MyLeaves(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	service leave.Service
}

// NewLeaveHandler creates a new leave handler
func NewLeaveHandler(service leave.Service) LeaveHandler {
	return &leaveHandlerImpl{service: service}
}

func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "No employee record linked to this account")
		return
	}

	var req leave.CreateLeaveRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", resp)
}

func (h *leaveHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "No employee record linked to this account")
		return
	}

	id, err := urlParamInt64(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid leave ID", nil)
		return
	}

	var req leave.UpdateLeaveRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id
	req.EmployeeID = employeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.service.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated", resp)
}

func (h *leaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "No employee record linked to this account")
		return
	}

	id, err := urlParamInt64(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid leave ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", nil)
}

func (h *leaveHandlerImpl) MyLeaves(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "No employee record linked to this account")
		return
	}

	resp, err := h.service.MyLeaves(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveFilter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := leave.Status(raw)
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.EmployeeID = &id
		}
	}

	resp, err := h.service.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Leaves, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: resp.TotalItems,
	})
}

func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "Leave request approved", h.service.Approve)
}

func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "Leave request rejected", h.service.Reject)
}

func (h *leaveHandlerImpl) decide(w http.ResponseWriter, r *http.Request, message string, fn func(ctx context.Context, id, decidedBy int64) (leave.LeaveResponse, error)) {
	userID, ok := userIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	id, err := urlParamInt64(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid leave ID", nil)
		return
	}

	resp, err := fn(r.Context(), id, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, resp)
}
