package leave

type LeaveType string

const (
	TypePaid   LeaveType = "Paid"
	TypeSick   LeaveType = "Sick"
	TypeUnpaid LeaveType = "Unpaid"
)

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "Pending"
	StatusApproved LeaveStatus = "Approved"
	StatusRejected LeaveStatus = "Rejected"
)

// AnnualQuota is the number of leave days granted per year.
const AnnualQuota = 20

// LeaveRequest entity
type LeaveRequest struct {
	ID             string      `json:"id"`
	EmployeeID     string      `json:"employeeId"`
	EmployeeName   string      `json:"employeeName"`
	Type           LeaveType   `json:"type"`
	StartDate      string      `json:"startDate"` // YYYY-MM-DD
	EndDate        string      `json:"endDate"`   // YYYY-MM-DD
	Reason         string      `json:"reason"`
	Status         LeaveStatus `json:"status"`
	AppliedDate    string      `json:"appliedDate"` // YYYY-MM-DD
	ManagerComment string      `json:"managerComment,omitempty"`
}
