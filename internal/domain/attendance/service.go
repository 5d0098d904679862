package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Seed populates an empty store with historical records, once.
	Seed(ctx context.Context) error

	// CheckIn opens a new session on today's record for the employee.
	CheckIn(ctx context.Context, employeeID string) (CheckResponse, error)

	// CheckOut closes the employee's open session for today.
	CheckOut(ctx context.Context, employeeID string) (CheckResponse, error)

	// ListAll returns day views for every employee, newest date first.
	ListAll(ctx context.Context) ([]DayView, error)

	// ListByEmployee returns day views for one employee, newest date first.
	ListByEmployee(ctx context.Context, employeeID string) ([]DayView, error)

	// Analytics summarizes total and average worked hours across all
	// records, excluding Absent and Leave days from the average.
	Analytics(ctx context.Context) (AnalyticsResponse, error)
}
