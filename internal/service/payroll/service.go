package payroll

import (
	"context"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/employee"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	employees employee.Repository
}

func NewPayrollService(employees employee.Repository) *PayrollServiceImpl {
	return &PayrollServiceImpl{employees: employees}
}

// Payslip implements payroll.PayrollService. Employees with a stored
// salary structure get it verbatim; otherwise the monthly gross is split
// by the fixed percentages.
func (p *PayrollServiceImpl) Payslip(ctx context.Context, employeeID string) (payroll.Payslip, error) {
	roster, err := p.employees.Load(ctx)
	if err != nil {
		return payroll.Payslip{}, err
	}

	var emp *employee.Employee
	for i := range roster {
		if roster[i].EmployeeID == employeeID || roster[i].ID == employeeID {
			emp = &roster[i]
			break
		}
	}
	if emp == nil {
		return payroll.Payslip{}, employee.ErrEmployeeNotFound
	}

	monthly := payroll.MonthlyGross(emp.Salary).Round(2)

	var earnings, deductions []payroll.PayslipLine
	if s := emp.SalaryStructure; s != nil {
		earnings = []payroll.PayslipLine{
			{Label: "Basic Salary", Amount: s.Basic},
			{Label: "House Rent Allowance", Amount: s.HRA},
			{Label: "Special Allowance", Amount: s.SpecialAllowance},
		}
		deductions = []payroll.PayslipLine{
			{Label: "Provident Fund", Amount: s.PF},
			{Label: "Income Tax (TDS)", Amount: s.TDS},
			{Label: "Professional Tax", Amount: s.ProfessionalTax},
		}
	} else {
		earnings = []payroll.PayslipLine{
			{Label: "Basic Salary", Amount: monthly.Mul(payroll.BasicShare).Round(2)},
			{Label: "House Rent Allowance", Amount: monthly.Mul(payroll.HRAShare).Round(2)},
			{Label: "Special Allowance", Amount: monthly.Mul(payroll.SpecialShare).Round(2)},
		}
		deductions = []payroll.PayslipLine{
			{Label: "Provident Fund", Amount: monthly.Mul(payroll.PFRate).Round(2)},
			{Label: "Income Tax (TDS)", Amount: monthly.Mul(payroll.TDSRate).Round(2)},
		}
	}

	totalEarned := sumLines(earnings)
	totalDeduct := sumLines(deductions)

	return payroll.Payslip{
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.FullName,
		MonthlyGross: monthly,
		Earnings:     earnings,
		Deductions:   deductions,
		TotalEarned:  totalEarned,
		TotalDeduct:  totalDeduct,
		NetPay:       totalEarned.Sub(totalDeduct),
	}, nil
}

// RunSummary implements payroll.PayrollService.
func (p *PayrollServiceImpl) RunSummary(ctx context.Context) (payroll.RunSummary, error) {
	roster, err := p.employees.Load(ctx)
	if err != nil {
		return payroll.RunSummary{}, err
	}

	summary := payroll.RunSummary{
		Rows:        make([]payroll.RunRow, 0, len(roster)),
		TotalPayout: decimal.Zero,
		TotalNet:    decimal.Zero,
	}
	for _, emp := range roster {
		monthly := payroll.MonthlyGross(emp.Salary).Round(2)
		tds := monthly.Mul(payroll.TDSRate).Round(2)
		pf := monthly.Mul(payroll.PFRate).Round(2)
		net := monthly.Sub(tds).Sub(pf)

		summary.Rows = append(summary.Rows, payroll.RunRow{
			EmployeeID:   emp.EmployeeID,
			EmployeeName: emp.FullName,
			Monthly:      monthly,
			TDS:          tds,
			PF:           pf,
			NetPay:       net,
		})
		summary.TotalPayout = summary.TotalPayout.Add(monthly)
		summary.TotalNet = summary.TotalNet.Add(net)
	}

	return summary, nil
}

func sumLines(lines []payroll.PayslipLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Amount)
	}
	return total
}
