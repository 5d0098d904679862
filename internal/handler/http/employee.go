package http

import (
	"encoding/json"
	"net/http"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/employee"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/handler/http/middleware"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	AuditLogs(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	roster, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, roster)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	emp, err := h.employeeService.GetByEmployeeID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// UpdateProfile implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.FromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req employee.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := employee.Actor{ID: claims.UserID, Role: claims.Role}
	resp, err := h.employeeService.UpdateProfile(r.Context(), actor, chi.URLParam(r, "employeeID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, resp.Message, resp.UpdatedProfile)
}

// AuditLogs implements EmployeeHandler.
func (h *employeeHandlerImpl) AuditLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.employeeService.AuditLogs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}
