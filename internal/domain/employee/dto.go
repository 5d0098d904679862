package employee

import (
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Actor identifies who is performing a profile mutation.
type Actor struct {
	ID   string
	Role Role
}

// UpdateProfileRequest carries a partial profile update. Nil fields are
// left untouched.
type UpdateProfileRequest struct {
	FullName   *string          `json:"fullName,omitempty"`
	Email      *string          `json:"email,omitempty"`
	Role       *Role            `json:"role,omitempty"`
	Position   *string          `json:"position,omitempty"`
	Department *string          `json:"department,omitempty"`
	JoinDate   *string          `json:"joinDate,omitempty"`
	Salary     *decimal.Decimal `json:"salary,omitempty"`
	Phone      *string          `json:"phone,omitempty"`
	Address    *string          `json:"address,omitempty"`
	AvatarURL  *string          `json:"avatar,omitempty"`
}

func (r UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joinDate", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Role != nil && *r.Role != RoleAdmin && *r.Role != RoleEmployee {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be ADMIN or EMPLOYEE"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateProfileResponse reports the outcome of a profile update.
type UpdateProfileResponse struct {
	Message        string   `json:"message"`
	UpdatedProfile Employee `json:"updatedProfile"`
}
