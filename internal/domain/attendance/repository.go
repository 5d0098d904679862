package attendance

import (
	"context"
)

// Repository is the durable whole-table store of DailyRecords. Load and
// Save always move the full record set; the service serializes the
// read-mutate-write window.
type Repository interface {
	// Load returns every stored record.
	Load(ctx context.Context) ([]DailyRecord, error)

	// Save replaces the full record set.
	Save(ctx context.Context, records []DailyRecord) error

	// Seeded reports whether the one-time historical seed has run.
	Seeded(ctx context.Context) (bool, error)

	// MarkSeeded sets the persistent seed flag.
	MarkSeeded(ctx context.Context) error
}
