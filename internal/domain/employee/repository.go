package employee

import (
	"context"
)

// Repository is the durable whole-table store of the employee roster and
// its audit trail.
type Repository interface {
	// Load returns the full roster, seeding it from the default roster
	// on first access.
	Load(ctx context.Context) ([]Employee, error)

	// Save replaces the full roster.
	Save(ctx context.Context, employees []Employee) error

	// AuditLogs returns every recorded profile change, oldest first.
	AuditLogs(ctx context.Context) ([]AuditEntry, error)

	// AppendAudit records one profile change.
	AppendAudit(ctx context.Context, entry AuditEntry) error
}
