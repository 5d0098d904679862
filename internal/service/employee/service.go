package employee

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/employee"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/events"
	"github.com/google/uuid"
)

// selfEditableFields are the profile fields an employee may change on
// their own record. Everything else requires an admin actor.
var selfEditableFields = map[string]struct{}{
	"phone":   {},
	"address": {},
	"avatar":  {},
}

type EmployeeServiceImpl struct {
	employee.Repository
	hub *events.Hub

	mu sync.Mutex

	now func() time.Time
}

func NewEmployeeService(repo employee.Repository, hub *events.Hub) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		Repository: repo,
		hub:        hub,
		now:        time.Now,
	}
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return e.Repository.Load(ctx)
}

// GetByEmployeeID implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	roster, err := e.Repository.Load(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	for _, emp := range roster {
		if emp.EmployeeID == employeeID || emp.ID == employeeID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// GetByEmail implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	roster, err := e.Repository.Load(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	for _, emp := range roster {
		if strings.EqualFold(emp.Email, email) {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// UpdateProfile implements employee.EmployeeService.
func (e *EmployeeServiceImpl) UpdateProfile(ctx context.Context, actor employee.Actor, targetEmployeeID string, req employee.UpdateProfileRequest) (employee.UpdateProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.UpdateProfileResponse{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	roster, err := e.Repository.Load(ctx)
	if err != nil {
		return employee.UpdateProfileResponse{}, err
	}

	idx := -1
	for i, emp := range roster {
		if emp.EmployeeID == targetEmployeeID || emp.ID == targetEmployeeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return employee.UpdateProfileResponse{}, employee.ErrEmployeeNotFound
	}

	changes := collectChanges(roster[idx], req)
	if len(changes) == 0 {
		return employee.UpdateProfileResponse{}, employee.ErrNoChangesDetected
	}

	if actor.Role != employee.RoleAdmin {
		if actor.ID != roster[idx].ID && actor.ID != roster[idx].EmployeeID {
			return employee.UpdateProfileResponse{}, employee.ErrRestrictedField
		}
		for field := range changes {
			if _, ok := selfEditableFields[field]; !ok {
				return employee.UpdateProfileResponse{}, employee.ErrRestrictedField
			}
		}
	}

	now := e.now()
	applyChanges(&roster[idx], req)
	roster[idx].UpdatedAt = &now
	roster[idx].UpdatedBy = actor.ID

	if err := e.Repository.Save(ctx, roster); err != nil {
		return employee.UpdateProfileResponse{}, err
	}

	entry := employee.AuditEntry{
		ID:            uuid.NewString(),
		EmployeeID:    roster[idx].EmployeeID,
		ChangedFields: changes,
		UpdatedBy:     actor.ID,
		Timestamp:     now,
	}
	if err := e.Repository.AppendAudit(ctx, entry); err != nil {
		return employee.UpdateProfileResponse{}, err
	}

	e.hub.Publish(events.TopicProfileUpdated, roster[idx])

	return employee.UpdateProfileResponse{
		Message:        "Profile updated successfully",
		UpdatedProfile: roster[idx],
	}, nil
}

// AuditLogs implements employee.EmployeeService.
func (e *EmployeeServiceImpl) AuditLogs(ctx context.Context) ([]employee.AuditEntry, error) {
	return e.Repository.AuditLogs(ctx)
}

// collectChanges diffs the request against the current profile, keyed by
// the field's JSON name.
func collectChanges(cur employee.Employee, req employee.UpdateProfileRequest) map[string]employee.FieldChange {
	changes := map[string]employee.FieldChange{}

	diffStr := func(field, old string, next *string) {
		if next != nil && *next != old {
			changes[field] = employee.FieldChange{Old: old, New: *next}
		}
	}

	diffStr("fullName", cur.FullName, req.FullName)
	diffStr("email", cur.Email, req.Email)
	diffStr("position", cur.Position, req.Position)
	diffStr("department", cur.Department, req.Department)
	diffStr("joinDate", cur.JoinDate, req.JoinDate)
	diffStr("phone", cur.Phone, req.Phone)
	diffStr("address", cur.Address, req.Address)
	diffStr("avatar", cur.AvatarURL, req.AvatarURL)

	if req.Role != nil && *req.Role != cur.Role {
		changes["role"] = employee.FieldChange{Old: string(cur.Role), New: string(*req.Role)}
	}
	if req.Salary != nil && !req.Salary.Equal(cur.Salary) {
		changes["salary"] = employee.FieldChange{Old: cur.Salary.String(), New: req.Salary.String()}
	}

	return changes
}

func applyChanges(emp *employee.Employee, req employee.UpdateProfileRequest) {
	setStr := func(dst *string, next *string) {
		if next != nil {
			*dst = *next
		}
	}

	setStr(&emp.FullName, req.FullName)
	setStr(&emp.Email, req.Email)
	setStr(&emp.Position, req.Position)
	setStr(&emp.Department, req.Department)
	setStr(&emp.JoinDate, req.JoinDate)
	setStr(&emp.Phone, req.Phone)
	setStr(&emp.Address, req.Address)
	setStr(&emp.AvatarURL, req.AvatarURL)

	if req.Role != nil {
		emp.Role = *req.Role
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
}
