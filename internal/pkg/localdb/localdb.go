package localdb

import (
	"context"
)

// KV is a JSON key-value store. Values are whole documents: every write
// replaces the full value under its key, mirroring the single-writer
// whole-table semantics the repositories rely on.
type KV interface {
	// Get unmarshals the value stored under key into out.
	// Returns false when the key does not exist.
	Get(ctx context.Context, key string, out any) (bool, error)

	// Set marshals value and stores it under key, replacing any
	// previous value.
	Set(ctx context.Context, key string, value any) error
}

// Well-known keys used by the repositories.
const (
	KeyAttendanceDB   = "attendance_db"
	KeyAttendanceSeed = "attendance_seeded_flag"
	KeyEmployeesDB    = "employees_db"
	KeyLeavesDB       = "leaves_db"
	KeyAuditLogs      = "audit_logs"
)
