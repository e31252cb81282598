package http

import (
	"net/http"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/task"
	"github.com/smart-attendance/attendance-backend-go/internal/handler/http/response"
)

// TaskHandler defines the task handler interface
type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	MyTasks(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	service task.Service
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(service task.Service) TaskHandler {
	return &taskHandlerImpl{service: service}
}

func (h *taskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "No employee record linked to this account")
		return
	}

	var req task.CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created", resp)
}

func (h *taskHandlerImpl) MyTasks(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "No employee record linked to this account")
		return
	}

	resp, err := h.service.MyTasks(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *taskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *taskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "No employee record linked to this account")
		return
	}

	id, err := urlParamInt64(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid task id", nil)
		return
	}

	var req task.UpdateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id
	req.EmployeeID = employeeID

	resp, err := h.service.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *taskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "No employee record linked to this account")
		return
	}

	id, err := urlParamInt64(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid task id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted", nil)
}
