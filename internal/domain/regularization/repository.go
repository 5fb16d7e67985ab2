package regularization

import (
	"context"
	"time"
)

// RequestRepository defines regularization request data access operations.
type RequestRepository interface {
	Create(ctx context.Context, r *Request) error
	GetByID(ctx context.Context, id string) (*Request, error)

	// Decide moves a pending request to the given terminal status. The
	// update is conditional on the request still being pending, so exactly
	// one of any set of concurrent callers wins. Returns ErrAlreadyDecided
	// when the request was decided earlier and ErrRequestNotFound when no
	// such request exists.
	Decide(ctx context.Context, id string, status RequestStatus, decidedBy string, decidedAt time.Time) (*Request, error)

	List(ctx context.Context, filter *RequestFilter) ([]Request, int64, error)
}
