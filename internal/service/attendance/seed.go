package attendance

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/attendance"
	"github.com/google/uuid"
)

// Seed implements attendance.AttendanceService. It populates the store
// with history over the thirty days before today per roster employee,
// exactly once; the persistent flag makes restarts idempotent.
func (a *AttendanceServiceImpl) Seed(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	seeded, err := a.Repository.Seeded(ctx)
	if err != nil {
		return fmt.Errorf("failed to check seed flag: %w", err)
	}
	if seeded {
		return nil
	}

	records := GenerateHistory(a.roster, a.now(), rand.New(rand.NewSource(a.now().UnixNano())))
	if err := a.Repository.Save(ctx, records); err != nil {
		return fmt.Errorf("failed to save seeded records: %w", err)
	}
	if err := a.Repository.MarkSeeded(ctx); err != nil {
		return fmt.Errorf("failed to mark store as seeded: %w", err)
	}
	return nil
}

// GenerateHistory builds synthetic attendance for every given employee
// over the thirty calendar days before today, skipping Saturdays and
// Sundays entirely, so no weekday record is older than thirty days.
// Roughly 5% of days come out Absent and another 5% Leave; the rest
// get one closed session starting around 08:45 and ending around
// 17:30, classified Present when the net duration reaches a full day
// and Partial otherwise.
func GenerateHistory(employeeIDs []string, today time.Time, rng *rand.Rand) []attendance.DailyRecord {
	var records []attendance.DailyRecord

	for offset := 30; offset >= 1; offset-- {
		day := today.AddDate(0, 0, -offset)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		date := day.Format("2006-01-02")
		for _, employeeID := range employeeIDs {
			records = append(records, generateDay(employeeID, day, date, rng))
		}
	}

	return records
}

func generateDay(employeeID string, day time.Time, date string, rng *rand.Rand) attendance.DailyRecord {
	record := attendance.DailyRecord{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Date:        date,
		Sessions:    []attendance.Session{},
		LastUpdated: day,
	}

	switch r := rng.Float64(); {
	case r < 0.05:
		record.Status = attendance.StatusAbsent
	case r < 0.10:
		record.Status = attendance.StatusLeave
	default:
		checkIn := time.Date(day.Year(), day.Month(), day.Day(), 8, 45, 0, 0, day.Location()).
			Add(time.Duration(rng.Intn(60)) * time.Minute)
		checkOut := time.Date(day.Year(), day.Month(), day.Day(), 17, 30, 0, 0, day.Location()).
			Add(time.Duration(rng.Intn(90)) * time.Minute)

		record.Sessions = append(record.Sessions, attendance.Session{
			CheckIn:  checkIn,
			CheckOut: &checkOut,
		})
		record.Status = attendance.Classify(
			"",
			record.Sessions,
			attendance.NetDuration(record.Sessions),
		)
	}

	return record
}
