package leave

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/employee"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/leave"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/events"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leave.Repository
	employees employee.Repository
	hub       *events.Hub

	mu sync.Mutex

	now func() time.Time
}

func NewLeaveService(repo leave.Repository, employees employee.Repository, hub *events.Hub) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		Repository: repo,
		employees:  employees,
		hub:        hub,
		now:        time.Now,
	}
}

// Submit implements leave.LeaveService.
func (l *LeaveServiceImpl) Submit(ctx context.Context, employeeID string, req leave.SubmitRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	name := employeeID
	roster, err := l.employees.Load(ctx)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	for _, emp := range roster {
		if emp.EmployeeID == employeeID {
			name = emp.FullName
			break
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	requests, err := l.Repository.Load(ctx)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	request := leave.LeaveRequest{
		ID:           uuid.NewString(),
		EmployeeID:   employeeID,
		EmployeeName: name,
		Type:         req.Type,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reason:       req.Reason,
		Status:       leave.StatusPending,
		AppliedDate:  l.now().Format("2006-01-02"),
	}
	requests = append(requests, request)

	if err := l.Repository.Save(ctx, requests); err != nil {
		return leave.LeaveRequest{}, err
	}

	l.hub.Publish(events.TopicLeaveUpdate, request)
	return request, nil
}

// ListAll implements leave.LeaveService.
func (l *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	requests, err := l.Repository.Load(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(requests)
	return requests, nil
}

// ListByEmployee implements leave.LeaveService.
func (l *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	requests, err := l.Repository.Load(ctx)
	if err != nil {
		return nil, err
	}

	own := make([]leave.LeaveRequest, 0, len(requests))
	for _, r := range requests {
		if r.EmployeeID == employeeID {
			own = append(own, r)
		}
	}
	sortNewestFirst(own)
	return own, nil
}

// Approve implements leave.LeaveService.
func (l *LeaveServiceImpl) Approve(ctx context.Context, id string, req leave.DecideRequest) (leave.LeaveRequest, error) {
	return l.decide(ctx, id, leave.StatusApproved, req.ManagerComment)
}

// Reject implements leave.LeaveService.
func (l *LeaveServiceImpl) Reject(ctx context.Context, id string, req leave.DecideRequest) (leave.LeaveRequest, error) {
	return l.decide(ctx, id, leave.StatusRejected, req.ManagerComment)
}

func (l *LeaveServiceImpl) decide(ctx context.Context, id string, status leave.LeaveStatus, comment string) (leave.LeaveRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	requests, err := l.Repository.Load(ctx)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	idx := -1
	for i, r := range requests {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if requests[idx].Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	requests[idx].Status = status
	requests[idx].ManagerComment = comment

	if err := l.Repository.Save(ctx, requests); err != nil {
		return leave.LeaveRequest{}, err
	}

	l.hub.Publish(events.TopicLeaveUpdate, requests[idx])
	return requests[idx], nil
}

// Balance implements leave.LeaveService. Approved days count against the
// annual quota; pending reports open requests, not days.
func (l *LeaveServiceImpl) Balance(ctx context.Context, employeeID string) (leave.BalanceResponse, error) {
	requests, err := l.Repository.Load(ctx)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	resp := leave.BalanceResponse{}
	for _, r := range requests {
		if r.EmployeeID != employeeID {
			continue
		}
		switch r.Status {
		case leave.StatusPending:
			resp.Pending++
		case leave.StatusApproved:
			days := requestDays(r)
			resp.Approved += days
			switch r.Type {
			case leave.TypeSick:
				resp.Sick += days
			case leave.TypePaid:
				resp.Paid += days
			case leave.TypeUnpaid:
				resp.Unpaid += days
			}
		}
	}

	resp.Balance = leave.AnnualQuota - resp.Approved
	if resp.Balance < 0 {
		resp.Balance = 0
	}
	return resp, nil
}

// requestDays counts the calendar days a request spans, inclusive of
// both endpoints. Unparseable dates fall back to one day.
func requestDays(r leave.LeaveRequest) int {
	start, errStart := time.Parse("2006-01-02", r.StartDate)
	end, errEnd := time.Parse("2006-01-02", r.EndDate)
	if errStart != nil || errEnd != nil || end.Before(start) {
		return 1
	}
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

func sortNewestFirst(requests []leave.LeaveRequest) {
	// AppliedDate is YYYY-MM-DD so string order is date order.
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].AppliedDate > requests[j].AppliedDate
	})
}
