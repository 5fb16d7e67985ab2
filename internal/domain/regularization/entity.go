package regularization

import "time"

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// ValidDecisions lists the statuses an approver may move a request to.
var ValidDecisions = []string{
	string(StatusApproved),
	string(StatusRejected),
}

// Request is a regularization request: an employee asking for an attendance
// correction on a given day. The Original* fields snapshot whatever clock
// values the attendance record held when the request was submitted; they are
// never updated afterwards.
type Request struct {
	ID         string
	EmployeeID string
	Date       time.Time

	OriginalClockIn   *time.Time
	OriginalClockOut  *time.Time
	RequestedClockIn  time.Time
	RequestedClockOut time.Time

	Reason      string
	Status      RequestStatus
	SubmittedBy string
	DecidedBy   *string
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
}
