package leave

import (
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/validator"
)

// SubmitRequest is a new leave application.
type SubmitRequest struct {
	Type      LeaveType `json:"type"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Reason    string    `json:"reason"`
}

func (r SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != TypePaid && r.Type != TypeSick && r.Type != TypeUnpaid {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be Paid, Sick or Unpaid"})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "must not be before startDate"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecideRequest carries the manager's approve/reject decision.
type DecideRequest struct {
	ManagerComment string `json:"managerComment"`
}

// BalanceResponse is the per-employee leave balance summary.
type BalanceResponse struct {
	Balance  int `json:"balance"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Sick     int `json:"sick"`
	Paid     int `json:"paid"`
	Unpaid   int `json:"unpaid"`
}
