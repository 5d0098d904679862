package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// SalaryStructure holds the fixed monthly components shown on a payslip.
type SalaryStructure struct {
	Basic            decimal.Decimal `json:"basic"`
	HRA              decimal.Decimal `json:"hra"`
	SpecialAllowance decimal.Decimal `json:"specialAllowance"`
	PF               decimal.Decimal `json:"pf"`
	TDS              decimal.Decimal `json:"tds"`
	ProfessionalTax  decimal.Decimal `json:"professionalTax"`
}

// Employee is one roster entry.
type Employee struct {
	ID              string           `json:"id"`
	EmployeeID      string           `json:"employeeId"` // e.g. "EMP-101"
	FullName        string           `json:"fullName"`
	Email           string           `json:"email"`
	PasswordHash    string           `json:"-"`
	Role            Role             `json:"role"`
	Position        string           `json:"position"`
	Department      string           `json:"department"`
	JoinDate        string           `json:"joinDate"` // YYYY-MM-DD
	Salary          decimal.Decimal  `json:"salary"`   // annual CTC
	Phone           string           `json:"phone"`
	Address         string           `json:"address"`
	AvatarURL       string           `json:"avatar"`
	SalaryStructure *SalaryStructure `json:"salaryStructure,omitempty"`
	ManagerName     string           `json:"managerName,omitempty"`
	UpdatedAt       *time.Time       `json:"updatedAt,omitempty"`
	UpdatedBy       string           `json:"updatedBy,omitempty"`
}

// AuditEntry records one applied profile change.
type AuditEntry struct {
	ID            string                 `json:"id"`
	EmployeeID    string                 `json:"employeeId"`
	ChangedFields map[string]FieldChange `json:"changedFields"`
	UpdatedBy     string                 `json:"updatedBy"`
	Timestamp     time.Time              `json:"timestamp"`
}

// FieldChange is the before and after value of one audited field.
type FieldChange struct {
	Old string `json:"old"`
	New string `json:"new"`
}
