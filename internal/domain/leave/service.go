package leave

import (
	"context"
)

// LeaveService defines business logic for leave requests.
type LeaveService interface {
	// Submit files a new pending request for the employee.
	Submit(ctx context.Context, employeeID string, req SubmitRequest) (LeaveRequest, error)

	// ListAll returns every request, newest applied date first.
	ListAll(ctx context.Context) ([]LeaveRequest, error)

	// ListByEmployee returns one employee's requests, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// Approve marks a pending request approved.
	Approve(ctx context.Context, id string, req DecideRequest) (LeaveRequest, error)

	// Reject marks a pending request rejected.
	Reject(ctx context.Context, id string, req DecideRequest) (LeaveRequest, error)

	// Balance summarizes the employee's remaining quota and approved
	// counts per type.
	Balance(ctx context.Context, employeeID string) (BalanceResponse, error)
}
