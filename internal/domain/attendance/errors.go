package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn = errors.New("you have already checked in")
	ErrNoActiveShift    = errors.New("no active shift found for today")
	ErrNoOpenSession    = errors.New("no active session to check out")
)
