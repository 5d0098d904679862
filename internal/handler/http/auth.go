package http

import (
	"encoding/json"
	"net/http"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/auth"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/employee"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/handler/http/middleware"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService     auth.AuthService
	employeeService employee.EmployeeService
}

func NewAuthHandler(authService auth.AuthService, employeeService employee.EmployeeService) AuthHandler {
	return &authHandlerImpl{
		authService:     authService,
		employeeService: employeeService,
	}
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", resp)
}

// Me implements AuthHandler.
func (h *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.FromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := h.employeeService.GetByEmployeeID(r.Context(), claims.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}
