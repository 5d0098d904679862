package attendance

import (
	"fmt"
	"sort"
	"time"
)

const timePlaceholder = "--:--:--"

// NetDuration sums the durations of all closed sessions. Open sessions
// contribute nothing until they are checked out; order does not matter.
func NetDuration(sessions []Session) time.Duration {
	var total time.Duration
	for _, s := range sessions {
		if s.CheckOut != nil {
			total += s.CheckOut.Sub(s.CheckIn)
		}
	}
	return total
}

// FormatDuration renders a duration as "Xh Ym". Non-positive durations
// render as a placeholder dash.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "--"
	}
	hours := int(d / time.Hour)
	minutes := int(d%time.Hour) / int(time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// Classify derives the day's status. Leave and Absent are administrative
// states and are preserved verbatim; otherwise the status follows from
// the sessions alone.
func Classify(stored Status, sessions []Session, net time.Duration) Status {
	if stored == StatusLeave || stored == StatusAbsent {
		return stored
	}
	if len(sessions) == 0 {
		return StatusAbsent
	}
	if net >= FullDay {
		return StatusPresent
	}
	return StatusPartial
}

// ToDayView computes the presentation view of a record. It is recomputed
// on every read so the view can never drift from the stored sessions.
func ToDayView(r DailyRecord) DayView {
	sorted := make([]Session, len(r.Sessions))
	copy(sorted, r.Sessions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CheckIn.Before(sorted[j].CheckIn)
	})

	entry := timePlaceholder
	exit := timePlaceholder
	if len(sorted) > 0 {
		entry = sorted[0].CheckIn.Format("03:04 PM")
		if last := sorted[len(sorted)-1].CheckOut; last != nil {
			exit = last.Format("03:04 PM")
		}
	}

	net := NetDuration(r.Sessions)

	return DayView{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Date:        r.Date,
		Entry:       entry,
		Exit:        exit,
		WorkHours:   FormatDuration(net),
		WorkHoursMs: net.Milliseconds(),
		Status:      Classify(r.Status, r.Sessions, net),
	}
}
