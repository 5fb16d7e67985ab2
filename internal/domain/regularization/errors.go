package regularization

import "errors"

// Regularization domain errors
var (
	ErrRequestNotFound = errors.New("regularization request not found")
	ErrAlreadyDecided  = errors.New("regularization request has already been decided")
)
