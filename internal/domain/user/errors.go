package user

import "errors"

var (
	ErrPermissionDenied = errors.New("you do not have permission to perform this action")
	ErrUnknownRole      = errors.New("unknown role")
)
