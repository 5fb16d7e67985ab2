package attendance

import "errors"

// Attendance domain errors
var (
	// Clock errors
	ErrAlreadyClockedIn = errors.New("you have an open session for today")
	ErrNoOpenSession    = errors.New("you have not clocked in today")

	// Record errors
	ErrDuplicateRecord = errors.New("an attendance record already exists for this employee and date")
	ErrRecordNotFound  = errors.New("attendance record not found")
)
