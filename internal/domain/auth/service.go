package auth

import (
	"context"
)

// AuthService is the mock roster login.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
