package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines attendance data access operations.
type AttendanceRepository interface {
	// ClockIn opens (or reopens) the record for the given day atomically.
	// Returns ErrAlreadyClockedIn when an open session already exists.
	ClockIn(ctx context.Context, employeeID string, date time.Time, clockIn time.Time, status Status) (*Attendance, error)

	// ClockOut closes today's open session atomically, computing the net
	// work minutes from the stored clock-in inside the same statement.
	// Returns ErrNoOpenSession when no open session exists.
	ClockOut(ctx context.Context, employeeID string, date time.Time, clockOut time.Time, breakMinutes int) (*Attendance, error)

	Create(ctx context.Context, a *Attendance) error

	// Upsert creates the record for (employee, date) or overwrites the clock
	// fields of the existing one. Used by regularization approval.
	Upsert(ctx context.Context, a *Attendance) error

	GetByID(ctx context.Context, id string) (*Attendance, error)

	// GetByEmployeeAndDate returns (nil, nil) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	Update(ctx context.Context, a *Attendance) error
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filter *AttendanceFilter) ([]Attendance, int64, error)
}
