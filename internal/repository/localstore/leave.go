package localstore

import (
	"context"
	"fmt"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/leave"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/fixtures"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/localdb"
)

type leaveRepository struct {
	kv localdb.KV
}

func NewLeaveRepository(kv localdb.KV) leave.Repository {
	return &leaveRepository{kv: kv}
}

// Load implements leave.Repository. The default requests are written on
// first access.
func (l *leaveRepository) Load(ctx context.Context) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	found, err := l.kv.Get(ctx, localdb.KeyLeavesDB, &requests)
	if err != nil {
		return nil, fmt.Errorf("failed to load leave requests: %w", err)
	}
	if !found {
		requests = fixtures.DefaultLeaves()
		if err := l.kv.Set(ctx, localdb.KeyLeavesDB, requests); err != nil {
			return nil, fmt.Errorf("failed to seed leave requests: %w", err)
		}
	}
	return requests, nil
}

// Save implements leave.Repository.
func (l *leaveRepository) Save(ctx context.Context, requests []leave.LeaveRequest) error {
	if err := l.kv.Set(ctx, localdb.KeyLeavesDB, requests); err != nil {
		return fmt.Errorf("failed to save leave requests: %w", err)
	}
	return nil
}
