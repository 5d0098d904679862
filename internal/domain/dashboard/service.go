package dashboard

import (
	"context"
)

// DashboardService composes the per-employee landing-page aggregates.
type DashboardService interface {
	Summary(ctx context.Context, employeeID string) (Summary, error)
}
