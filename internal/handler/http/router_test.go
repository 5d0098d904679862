package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/fixtures"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/events"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/jwt"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/localdb"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/repository/localstore"
	attendanceService "github.com/Snowwden-gpu/HRMS-ALIGNA/internal/service/attendance"
	authService "github.com/Snowwden-gpu/HRMS-ALIGNA/internal/service/auth"
	dashboardService "github.com/Snowwden-gpu/HRMS-ALIGNA/internal/service/dashboard"
	employeeService "github.com/Snowwden-gpu/HRMS-ALIGNA/internal/service/employee"
	leaveService "github.com/Snowwden-gpu/HRMS-ALIGNA/internal/service/leave"
	payrollService "github.com/Snowwden-gpu/HRMS-ALIGNA/internal/service/payroll"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	kv := localdb.NewMemoryKV()
	hub := events.NewHub()
	jwtService := jwt.NewJWTService(testSecret, "1h")

	empRepo := localstore.NewEmployeeRepository(kv)
	attRepo := localstore.NewAttendanceRepository(kv)
	leaveRepo := localstore.NewLeaveRepository(kv)

	employees := employeeService.NewEmployeeService(empRepo, hub)
	attendance := attendanceService.NewAttendanceService(attRepo, hub, fixtures.RosterEmployeeIDs())
	leaves := leaveService.NewLeaveService(leaveRepo, empRepo, hub)
	payroll := payrollService.NewPayrollService(empRepo)
	dashboard := dashboardService.NewDashboardService(attendance, leaves, payroll)
	auth := authService.NewAuthService(employees, jwtService)

	return NewRouter(jwtService, "test", Handlers{
		Auth:       NewAuthHandler(auth, employees),
		Attendance: NewAttendanceHandler(attendance),
		Employee:   NewEmployeeHandler(employees),
		Leave:      NewLeaveHandler(leaves),
		Payroll:    NewPayrollHandler(payroll),
		Dashboard:  NewDashboardHandler(dashboard),
		Events:     NewEventsHandler(hub),
	})
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(t *testing.T, router *chi.Mux, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

// login authenticates a seeded roster member. Seed passwords derive
// from the employee code.
func login(t *testing.T, router *chi.Mux, email, employeeID string) string {
	t.Helper()

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": fixtures.PasswordFor(employeeID),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

func TestRouter_Login_BadCredentials(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "rahul.sharma@aligna.io",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestRouter_CheckInFlow(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	token := login(t, router, "rahul.sharma@aligna.io", "EMP-202")

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-in", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	// Second check-in conflicts.
	rec, env = doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-in", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Already checked in", env.Error.Message)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-out", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/attendance/my", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var views []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &views))
	assert.Len(t, views, 1)
}

func TestRouter_CheckOutWithoutShift(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	token := login(t, router, "rahul.sharma@aligna.io", "EMP-202")

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-out", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "No active shift found", env.Error.Message)
}

func TestRouter_AdminRoutesRequireAdmin(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	employeeToken := login(t, router, "rahul.sharma@aligna.io", "EMP-202")
	rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/attendance/", employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := login(t, router, "priya.verma@aligna.io", "EMP-101")
	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/attendance/", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RequiresToken(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/my", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_LeaveLifecycle(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	employeeToken := login(t, router, "rahul.sharma@aligna.io", "EMP-202")
	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/leaves/", employeeToken, map[string]string{
		"type":      "Paid",
		"startDate": "2026-09-10",
		"endDate":   "2026-09-11",
		"reason":    "Travel",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)

	// Employees cannot approve.
	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/leaves/"+created.ID+"/approve", employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := login(t, router, "priya.verma@aligna.io", "EMP-101")
	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/leaves/"+created.ID+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/leaves/my/balance", employeeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var balance struct {
		Balance int `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &balance))
	assert.Equal(t, 18, balance.Balance)
}

func TestRouter_ProfileUpdatePermissions(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	employeeToken := login(t, router, "rahul.sharma@aligna.io", "EMP-202")

	// Own contact info is editable.
	rec, _ := doJSON(t, router, http.MethodPatch, "/api/v1/employees/EMP-202", employeeToken, map[string]string{
		"phone": "+91 90000 00000",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Own salary-adjacent fields are not.
	rec, env := doJSON(t, router, http.MethodPatch, "/api/v1/employees/EMP-202", employeeToken, map[string]string{
		"position": "CTO",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)

	// Admin edits anyone.
	adminToken := login(t, router, "priya.verma@aligna.io", "EMP-101")
	rec, _ = doJSON(t, router, http.MethodPatch, "/api/v1/employees/EMP-202", adminToken, map[string]string{
		"position": "Principal Engineer",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/employees/audit-logs", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var logs []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &logs))
	assert.Len(t, logs, 2)
}

func TestRouter_PayrollAndDashboard(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	token := login(t, router, "rahul.sharma@aligna.io", "EMP-202")

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/payroll/my", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var slip struct {
		EmployeeName string `json:"employeeName"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &slip))
	assert.Equal(t, "Rahul Sharma", slip.EmployeeName)

	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/dashboard/my", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary struct {
		AttendanceScore int `json:"attendanceScore"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.GreaterOrEqual(t, summary.AttendanceScore, 75)
}
