package attendance

// DayView is the derived, never-persisted presentation of a DailyRecord.
type DayView struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employeeId"`
	Date        string `json:"date"`
	Entry       string `json:"entry"`
	Exit        string `json:"exit"`
	WorkHours   string `json:"workHours"`
	WorkHoursMs int64  `json:"workHoursMs"`
	Status      Status `json:"status"`
}

// CheckResponse is returned by the check-in and check-out operations.
type CheckResponse struct {
	Record DayView `json:"record"`
}

// AnalyticsResponse summarizes a set of day views for the admin screen.
type AnalyticsResponse struct {
	TotalRecords int    `json:"total_records"`
	TotalHours   string `json:"total_hours"`
	AvgHours     string `json:"avg_hours"`
	TotalHoursMs int64  `json:"total_hours_ms"`
	AvgHoursMs   int64  `json:"avg_hours_ms"`
}
