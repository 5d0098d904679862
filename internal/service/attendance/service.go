package attendance

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/attendance"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/events"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendance.Repository
	hub    *events.Hub
	roster []string

	// mu serializes every read-mutate-write window against the
	// whole-table store. The repository itself does not lock.
	mu sync.Mutex

	now func() time.Time
}

// NewAttendanceService wires the attendance store, the broadcast hub and
// the roster of employee codes the one-time seed generates history for.
func NewAttendanceService(repo attendance.Repository, hub *events.Hub, roster []string) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		Repository: repo,
		hub:        hub,
		roster:     roster,
		now:        time.Now,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.CheckResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	records, err := a.Repository.Load(ctx)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	now := a.now()
	today := now.Format("2006-01-02")

	idx := findRecord(records, employeeID, today)
	if idx >= 0 && records[idx].OpenSession() >= 0 {
		return attendance.CheckResponse{}, attendance.ErrAlreadyCheckedIn
	}

	session := attendance.Session{CheckIn: now}
	if idx >= 0 {
		records[idx].Sessions = append(records[idx].Sessions, session)
		records[idx].LastUpdated = now
	} else {
		records = append(records, attendance.DailyRecord{
			ID:          uuid.NewString(),
			EmployeeID:  employeeID,
			Date:        today,
			Sessions:    []attendance.Session{session},
			Status:      attendance.StatusPresent,
			LastUpdated: now,
		})
		idx = len(records) - 1
	}

	if err := a.Repository.Save(ctx, records); err != nil {
		return attendance.CheckResponse{}, err
	}

	view := attendance.ToDayView(records[idx])
	a.hub.Publish(events.TopicAttendanceUpdate, view)

	return attendance.CheckResponse{Record: view}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.CheckResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	records, err := a.Repository.Load(ctx)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	now := a.now()
	today := now.Format("2006-01-02")

	idx := findRecord(records, employeeID, today)
	if idx < 0 {
		return attendance.CheckResponse{}, attendance.ErrNoActiveShift
	}

	open := records[idx].OpenSession()
	if open < 0 {
		return attendance.CheckResponse{}, attendance.ErrNoOpenSession
	}

	checkOut := now
	records[idx].Sessions[open].CheckOut = &checkOut
	records[idx].LastUpdated = now
	records[idx].Status = attendance.Classify(
		records[idx].Status,
		records[idx].Sessions,
		attendance.NetDuration(records[idx].Sessions),
	)

	if err := a.Repository.Save(ctx, records); err != nil {
		return attendance.CheckResponse{}, err
	}

	view := attendance.ToDayView(records[idx])
	a.hub.Publish(events.TopicAttendanceUpdate, view)

	return attendance.CheckResponse{Record: view}, nil
}

// ListAll implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAll(ctx context.Context) ([]attendance.DayView, error) {
	records, err := a.Repository.Load(ctx)
	if err != nil {
		return nil, err
	}
	return toViews(records), nil
}

// ListByEmployee implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.DayView, error) {
	records, err := a.Repository.Load(ctx)
	if err != nil {
		return nil, err
	}

	own := make([]attendance.DailyRecord, 0, len(records))
	for _, r := range records {
		if r.EmployeeID == employeeID {
			own = append(own, r)
		}
	}
	return toViews(own), nil
}

// Analytics implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Analytics(ctx context.Context) (attendance.AnalyticsResponse, error) {
	records, err := a.Repository.Load(ctx)
	if err != nil {
		return attendance.AnalyticsResponse{}, err
	}

	var total time.Duration
	worked := 0
	for _, r := range records {
		view := attendance.ToDayView(r)
		if view.Status == attendance.StatusAbsent || view.Status == attendance.StatusLeave {
			continue
		}
		total += time.Duration(view.WorkHoursMs) * time.Millisecond
		worked++
	}

	resp := attendance.AnalyticsResponse{
		TotalRecords: len(records),
		TotalHours:   attendance.FormatDuration(total),
		AvgHours:     "--",
		TotalHoursMs: total.Milliseconds(),
	}
	if worked > 0 {
		avg := total / time.Duration(worked)
		resp.AvgHours = attendance.FormatDuration(avg)
		resp.AvgHoursMs = avg.Milliseconds()
	}
	return resp, nil
}

// findRecord returns the index of the record for (employeeID, date), or
// -1 when absent.
func findRecord(records []attendance.DailyRecord, employeeID, date string) int {
	for i, r := range records {
		if r.EmployeeID == employeeID && r.Date == date {
			return i
		}
	}
	return -1
}

// toViews derives day views and sorts them newest date first. Ties keep
// a stable order so same-day records for different employees do not
// jump around between reads.
func toViews(records []attendance.DailyRecord) []attendance.DayView {
	views := make([]attendance.DayView, 0, len(records))
	for _, r := range records {
		views = append(views, attendance.ToDayView(r))
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Date > views[j].Date
	})
	return views
}
