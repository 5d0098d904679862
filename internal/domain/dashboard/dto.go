package dashboard

import (
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// Summary is the employee's landing-page snapshot.
type Summary struct {
	Today           *attendance.DayView `json:"today,omitempty"`
	AttendanceScore int                 `json:"attendanceScore"`
	LeaveBalance    int                 `json:"leaveBalance"`
	PendingLeaves   int                 `json:"pendingLeaves"`
	NextPayout      decimal.Decimal     `json:"nextPayout"`
}
