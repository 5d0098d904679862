package payroll

import (
	"github.com/shopspring/decimal"
)

// Fixed split percentages used when an employee has no stored salary
// structure, and for the admin run summary. This is display arithmetic,
// not a tax engine.
var (
	BasicShare   = decimal.NewFromFloat(0.5)
	HRAShare     = decimal.NewFromFloat(0.2)
	SpecialShare = decimal.NewFromFloat(0.3)
	TDSRate      = decimal.NewFromFloat(0.10)
	PFRate       = decimal.NewFromFloat(0.05)
)

var monthsPerYear = decimal.NewFromInt(12)

// MonthlyGross is the employee's monthly figure derived from annual CTC.
func MonthlyGross(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(monthsPerYear)
}
