package leave

import (
	"context"
)

// Repository is the durable whole-table store of leave requests.
type Repository interface {
	// Load returns every stored request, seeding the defaults on first
	// access.
	Load(ctx context.Context) ([]LeaveRequest, error)

	// Save replaces the full request set.
	Save(ctx context.Context, requests []LeaveRequest) error
}
