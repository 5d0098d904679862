package employee

import (
	"context"
	"testing"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/employee"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/events"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/localdb"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/repository/localstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *EmployeeServiceImpl {
	t.Helper()
	repo := localstore.NewEmployeeRepository(localdb.NewMemoryKV())
	return NewEmployeeService(repo, events.NewHub())
}

func strPtr(s string) *string { return &s }

func TestEmployeeService_List_SeedsDefaultRoster(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	roster, err := svc.List(ctx)
	require.NoError(t, err)

	require.Len(t, roster, 6)
	assert.Equal(t, "EMP-101", roster[0].EmployeeID)
	assert.Equal(t, employee.RoleAdmin, roster[0].Role)
	assert.NotEmpty(t, roster[0].PasswordHash)
}

func TestEmployeeService_GetByEmployeeID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	emp, err := svc.GetByEmployeeID(ctx, "EMP-202")
	require.NoError(t, err)
	assert.Equal(t, "Rahul Sharma", emp.FullName)

	// Internal ID works too.
	byID, err := svc.GetByEmployeeID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.EmployeeID, byID.EmployeeID)

	_, err = svc.GetByEmployeeID(ctx, "EMP-999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_GetByEmail_CaseInsensitive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	emp, err := svc.GetByEmail(ctx, "Priya.Verma@Aligna.IO")
	require.NoError(t, err)
	assert.Equal(t, "EMP-101", emp.EmployeeID)
}

func TestEmployeeService_UpdateProfile_SelfEditsContactFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	self, err := svc.GetByEmployeeID(ctx, "EMP-202")
	require.NoError(t, err)
	actor := employee.Actor{ID: self.ID, Role: employee.RoleEmployee}

	resp, err := svc.UpdateProfile(ctx, actor, "EMP-202", employee.UpdateProfileRequest{
		Phone: strPtr("+91 90000 00000"),
	})
	require.NoError(t, err)

	assert.Equal(t, "+91 90000 00000", resp.UpdatedProfile.Phone)
	assert.NotNil(t, resp.UpdatedProfile.UpdatedAt)
	assert.Equal(t, self.ID, resp.UpdatedProfile.UpdatedBy)
}

func TestEmployeeService_UpdateProfile_SelfCannotEditSalary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	self, err := svc.GetByEmployeeID(ctx, "EMP-202")
	require.NoError(t, err)
	actor := employee.Actor{ID: self.ID, Role: employee.RoleEmployee}

	_, err = svc.UpdateProfile(ctx, actor, "EMP-202", employee.UpdateProfileRequest{
		Position: strPtr("VP of Engineering"),
	})
	assert.ErrorIs(t, err, employee.ErrRestrictedField)
}

func TestEmployeeService_UpdateProfile_CannotEditOthers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	self, err := svc.GetByEmployeeID(ctx, "EMP-202")
	require.NoError(t, err)
	actor := employee.Actor{ID: self.ID, Role: employee.RoleEmployee}

	_, err = svc.UpdateProfile(ctx, actor, "EMP-303", employee.UpdateProfileRequest{
		Phone: strPtr("+91 90000 00000"),
	})
	assert.ErrorIs(t, err, employee.ErrRestrictedField)
}

func TestEmployeeService_UpdateProfile_AdminEditsAnyField(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	admin, err := svc.GetByEmployeeID(ctx, "EMP-101")
	require.NoError(t, err)
	actor := employee.Actor{ID: admin.ID, Role: employee.RoleAdmin}

	resp, err := svc.UpdateProfile(ctx, actor, "EMP-303", employee.UpdateProfileRequest{
		Position:   strPtr("Design Lead"),
		Department: strPtr("Design"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Design Lead", resp.UpdatedProfile.Position)

	logs, err := svc.AuditLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "EMP-303", logs[0].EmployeeID)
	assert.Contains(t, logs[0].ChangedFields, "position")
	assert.Contains(t, logs[0].ChangedFields, "department")
	assert.Equal(t, "Senior UX Designer", logs[0].ChangedFields["position"].Old)
}

func TestEmployeeService_UpdateProfile_NoChanges(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	admin, err := svc.GetByEmployeeID(ctx, "EMP-101")
	require.NoError(t, err)
	actor := employee.Actor{ID: admin.ID, Role: employee.RoleAdmin}

	_, err = svc.UpdateProfile(ctx, actor, "EMP-303", employee.UpdateProfileRequest{})
	assert.ErrorIs(t, err, employee.ErrNoChangesDetected)

	// Same value as stored counts as no change.
	_, err = svc.UpdateProfile(ctx, actor, "EMP-303", employee.UpdateProfileRequest{
		Position: strPtr("Senior UX Designer"),
	})
	assert.ErrorIs(t, err, employee.ErrNoChangesDetected)
}

func TestEmployeeService_UpdateProfile_InvalidEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	actor := employee.Actor{ID: "1", Role: employee.RoleAdmin}
	_, err := svc.UpdateProfile(ctx, actor, "EMP-303", employee.UpdateProfileRequest{
		Email: strPtr("not-an-email"),
	})
	assert.Error(t, err)
}

func TestEmployeeService_UpdateProfile_PublishesEvent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	hub := events.NewHub()
	repo := localstore.NewEmployeeRepository(localdb.NewMemoryKV())
	svc := NewEmployeeService(repo, hub)

	ch, cancel := hub.Subscribe()
	defer cancel()

	actor := employee.Actor{ID: "1", Role: employee.RoleAdmin}
	_, err := svc.UpdateProfile(ctx, actor, "EMP-404", employee.UpdateProfileRequest{
		Department: strPtr("Growth"),
	})
	require.NoError(t, err)

	ev := <-ch
	assert.Equal(t, events.TopicProfileUpdated, ev.Topic)
	updated, ok := ev.Data.(employee.Employee)
	require.True(t, ok)
	assert.Equal(t, "EMP-404", updated.EmployeeID)
}
