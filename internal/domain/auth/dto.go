package auth

import (
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/employee"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/validator"
)

// LoginRequest is a roster credential check.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LoginResponse carries the access token and the matched profile.
type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	ExpiresAt   int64             `json:"expires_at"`
	Profile     employee.Employee `json:"profile"`
}
