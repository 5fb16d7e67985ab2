package attendance

import "context"

// AttendanceService defines attendance business logic operations.
// Clock operations act on the calling employee; the caller identity and role
// are read from the request context.
type AttendanceService interface {
	ClockIn(ctx context.Context) (*AttendanceResponse, error)
	ClockOut(ctx context.Context) (*AttendanceResponse, error)

	CreateAttendance(ctx context.Context, req *CreateAttendanceRequest) (*AttendanceResponse, error)
	UpdateAttendance(ctx context.Context, req *UpdateAttendanceRequest) (*AttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id string) error

	GetAttendance(ctx context.Context, id string) (*AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter *AttendanceFilter) (*ListAttendanceResponse, error)
}
