package regularization

import "context"

// RequestService defines regularization business logic operations.
type RequestService interface {
	// Submit files a request for the calling employee, snapshotting the
	// current clock values of the target day. The attendance record itself
	// is not touched.
	Submit(ctx context.Context, req *SubmitRequest) (*RequestResponse, error)

	// Decide approves or rejects a pending request. Approval applies the
	// requested clock values to the attendance record in the same
	// transaction as the status change.
	Decide(ctx context.Context, req *DecideRequest) (*RequestResponse, error)

	GetRequest(ctx context.Context, id string) (*RequestResponse, error)
	ListRequests(ctx context.Context, filter *RequestFilter) (*ListRequestsResponse, error)
}
