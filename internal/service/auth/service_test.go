package auth

import (
	"context"
	"testing"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/auth"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/fixtures"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/events"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/jwt"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/localdb"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/repository/localstore"
	employeeSvc "github.com/Snowwden-gpu/HRMS-ALIGNA/internal/service/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *AuthServiceImpl {
	t.Helper()
	repo := localstore.NewEmployeeRepository(localdb.NewMemoryKV())
	employees := employeeSvc.NewEmployeeService(repo, events.NewHub())
	return NewAuthService(employees, jwt.NewJWTService("test-secret-key", "1h"))
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	resp, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "rahul.sharma@aligna.io",
		Password: fixtures.PasswordFor("EMP-202"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Positive(t, resp.ExpiresAt)
	assert.Equal(t, "EMP-202", resp.Profile.EmployeeID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "rahul.sharma@aligna.io",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "nobody@aligna.io",
		Password: fixtures.PasswordFor("EMP-202"),
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_Invalid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "rahul.sharma@aligna.io"})
	assert.Error(t, err)
}
