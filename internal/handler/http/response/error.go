package response

import (
	"errors"
	"net/http"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/attendance"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/auth"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/employee"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/leave"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in")
	case errors.Is(err, attendance.ErrNoActiveShift):
		NotFound(w, "No active shift found")
	case errors.Is(err, attendance.ErrNoOpenSession):
		Conflict(w, "No active session to check out")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrRestrictedField):
		Forbidden(w, "You do not have permission to edit restricted fields")
	case errors.Is(err, employee.ErrNoChangesDetected):
		BadRequest(w, "No changes detected", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
