package payroll

import (
	"github.com/shopspring/decimal"
)

// PayslipLine is one earning or deduction component.
type PayslipLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Payslip is the monthly payout breakdown for one employee.
type Payslip struct {
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	MonthlyGross decimal.Decimal `json:"monthlyGross"`
	Earnings     []PayslipLine   `json:"earnings"`
	Deductions   []PayslipLine   `json:"deductions"`
	TotalEarned  decimal.Decimal `json:"totalEarned"`
	TotalDeduct  decimal.Decimal `json:"totalDeducted"`
	NetPay       decimal.Decimal `json:"netPay"`
}

// RunRow is one employee's line in the admin payroll run.
type RunRow struct {
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Monthly      decimal.Decimal `json:"monthly"`
	TDS          decimal.Decimal `json:"tds"`
	PF           decimal.Decimal `json:"pf"`
	NetPay       decimal.Decimal `json:"netPay"`
}

// RunSummary is the organization-wide payroll view.
type RunSummary struct {
	Rows        []RunRow        `json:"rows"`
	TotalPayout decimal.Decimal `json:"totalPayout"`
	TotalNet    decimal.Decimal `json:"totalNet"`
}
