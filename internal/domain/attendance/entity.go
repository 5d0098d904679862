package attendance

import (
	"time"
)

// Status classifies a day of attendance. Present and Partial are derived
// from session durations; Absent and Leave are administrative states set
// at seed time and never recomputed.
type Status string

const (
	StatusPresent Status = "Present"
	StatusPartial Status = "Partial"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
)

// FullDay is the net duration threshold for a Present classification.
const FullDay = 8 * time.Hour

// Session is one continuous presence interval. A nil CheckOut means the
// session is still open (the employee is clocked in).
type Session struct {
	CheckIn  time.Time  `json:"checkIn"`
	CheckOut *time.Time `json:"checkOut"`
}

// DailyRecord aggregates all sessions for one employee on one calendar
// day. Exactly one record exists per (EmployeeID, Date) pair, and at most
// one of its sessions may be open at any time.
type DailyRecord struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Sessions    []Session `json:"sessions"`
	Status      Status    `json:"status"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// OpenSession returns the index of the record's open session, or -1 when
// every session is closed.
func (r *DailyRecord) OpenSession() int {
	for i, s := range r.Sessions {
		if s.CheckOut == nil {
			return i
		}
	}
	return -1
}
