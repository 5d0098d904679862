package leave

import (
	"context"
	"testing"
	"time"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/leave"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/events"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/localdb"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/repository/localstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *LeaveServiceImpl {
	t.Helper()
	kv := localdb.NewMemoryKV()
	svc := NewLeaveService(
		localstore.NewLeaveRepository(kv),
		localstore.NewEmployeeRepository(kv),
		events.NewHub(),
	)
	svc.now = func() time.Time { return time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC) }
	return svc
}

func validRequest() leave.SubmitRequest {
	return leave.SubmitRequest{
		Type:      leave.TypePaid,
		StartDate: "2024-06-10",
		EndDate:   "2024-06-12",
		Reason:    "Family function",
	}
}

func TestLeaveService_Submit_CreatesPendingRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	request, err := svc.Submit(ctx, "EMP-202", validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, request.ID)
	assert.Equal(t, leave.StatusPending, request.Status)
	assert.Equal(t, "Rahul Sharma", request.EmployeeName)
	assert.Equal(t, "2024-06-03", request.AppliedDate)
}

func TestLeaveService_Submit_Invalid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	req := validRequest()
	req.EndDate = "2024-06-01" // before start
	_, err := svc.Submit(ctx, "EMP-202", req)
	assert.Error(t, err)

	req = validRequest()
	req.Reason = "  "
	_, err = svc.Submit(ctx, "EMP-202", req)
	assert.Error(t, err)

	req = validRequest()
	req.Type = "Sabbatical"
	_, err = svc.Submit(ctx, "EMP-202", req)
	assert.Error(t, err)
}

func TestLeaveService_ListAll_IncludesSeededRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	requests, err := svc.ListAll(ctx)
	require.NoError(t, err)

	require.Len(t, requests, 1)
	assert.Equal(t, "l1", requests[0].ID)
	assert.Equal(t, leave.StatusPending, requests[0].Status)
}

func TestLeaveService_Approve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	decided, err := svc.Approve(ctx, "l1", leave.DecideRequest{ManagerComment: "Get well soon"})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, decided.Status)
	assert.Equal(t, "Get well soon", decided.ManagerComment)

	// Deciding twice is rejected.
	_, err = svc.Reject(ctx, "l1", leave.DecideRequest{})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestLeaveService_Decide_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Approve(ctx, "missing", leave.DecideRequest{})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_Balance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	// Seeded request is 2 days of Sick leave, pending.
	balance, err := svc.Balance(ctx, "EMP-202")
	require.NoError(t, err)
	assert.Equal(t, leave.AnnualQuota, balance.Balance)
	assert.Equal(t, 1, balance.Pending)
	assert.Zero(t, balance.Approved)

	_, err = svc.Approve(ctx, "l1", leave.DecideRequest{})
	require.NoError(t, err)

	balance, err = svc.Balance(ctx, "EMP-202")
	require.NoError(t, err)
	assert.Equal(t, leave.AnnualQuota-2, balance.Balance)
	assert.Equal(t, 2, balance.Approved)
	assert.Equal(t, 2, balance.Sick)
	assert.Zero(t, balance.Pending)
}

func TestLeaveService_Balance_OtherEmployeeUnaffected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Approve(ctx, "l1", leave.DecideRequest{})
	require.NoError(t, err)

	balance, err := svc.Balance(ctx, "EMP-303")
	require.NoError(t, err)
	assert.Equal(t, leave.AnnualQuota, balance.Balance)
}

func TestLeaveService_Submit_PublishesEvent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := localdb.NewMemoryKV()
	hub := events.NewHub()
	svc := NewLeaveService(
		localstore.NewLeaveRepository(kv),
		localstore.NewEmployeeRepository(kv),
		hub,
	)

	ch, cancel := hub.Subscribe()
	defer cancel()

	_, err := svc.Submit(ctx, "EMP-202", validRequest())
	require.NoError(t, err)

	ev := <-ch
	assert.Equal(t, events.TopicLeaveUpdate, ev.Topic)
}
