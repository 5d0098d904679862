package auth

import (
	"context"
	"errors"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/auth"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/employee"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employees  employee.EmployeeService
	jwtService jwt.Service
}

func NewAuthService(employees employee.EmployeeService, jwtService jwt.Service) *AuthServiceImpl {
	return &AuthServiceImpl{
		employees:  employees,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService. The roster is the only credential
// source; a missing email and a bad password are indistinguishable to
// the caller.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := a.employees.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(emp)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Profile:     emp,
	}, nil
}
