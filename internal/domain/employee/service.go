package employee

import (
	"context"
)

// EmployeeService defines business logic for the employee directory.
type EmployeeService interface {
	// List returns the full roster.
	List(ctx context.Context) ([]Employee, error)

	// GetByEmployeeID finds one roster entry by internal ID or employee code.
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	// GetByEmail finds one roster entry by email, case-insensitively.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// UpdateProfile applies a role-restricted partial update and records
	// an audit entry for the applied changes.
	UpdateProfile(ctx context.Context, actor Actor, targetEmployeeID string, req UpdateProfileRequest) (UpdateProfileResponse, error)

	// AuditLogs returns the recorded profile changes.
	AuditLogs(ctx context.Context) ([]AuditEntry, error)
}
