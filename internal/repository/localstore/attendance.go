package localstore

import (
	"context"
	"fmt"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/attendance"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/localdb"
)

type attendanceRepository struct {
	kv localdb.KV
}

func NewAttendanceRepository(kv localdb.KV) attendance.Repository {
	return &attendanceRepository{kv: kv}
}

// Load implements attendance.Repository.
func (a *attendanceRepository) Load(ctx context.Context) ([]attendance.DailyRecord, error) {
	var records []attendance.DailyRecord
	found, err := a.kv.Get(ctx, localdb.KeyAttendanceDB, &records)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance records: %w", err)
	}
	if !found {
		return []attendance.DailyRecord{}, nil
	}
	return records, nil
}

// Save implements attendance.Repository.
func (a *attendanceRepository) Save(ctx context.Context, records []attendance.DailyRecord) error {
	if err := a.kv.Set(ctx, localdb.KeyAttendanceDB, records); err != nil {
		return fmt.Errorf("failed to save attendance records: %w", err)
	}
	return nil
}

// Seeded implements attendance.Repository.
func (a *attendanceRepository) Seeded(ctx context.Context) (bool, error) {
	var flag bool
	found, err := a.kv.Get(ctx, localdb.KeyAttendanceSeed, &flag)
	if err != nil {
		return false, fmt.Errorf("failed to read seed flag: %w", err)
	}
	return found && flag, nil
}

// MarkSeeded implements attendance.Repository.
func (a *attendanceRepository) MarkSeeded(ctx context.Context) error {
	if err := a.kv.Set(ctx, localdb.KeyAttendanceSeed, true); err != nil {
		return fmt.Errorf("failed to set seed flag: %w", err)
	}
	return nil
}
