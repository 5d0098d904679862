package payroll

import (
	"context"
)

// PayrollService defines business logic for payroll display.
type PayrollService interface {
	// Payslip builds the monthly breakdown for one employee.
	Payslip(ctx context.Context, employeeID string) (Payslip, error)

	// RunSummary builds the organization-wide monthly run.
	RunSummary(ctx context.Context) (RunSummary, error)
}
