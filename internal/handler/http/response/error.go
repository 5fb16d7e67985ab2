package response

import (
	"errors"
	"net/http"

	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/attendance"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/auth"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/employee"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/regularization"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/user"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth / user domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrPermissionDenied):
		Forbidden(w, "You do not have permission to perform this action")
	case errors.Is(err, user.ErrUnknownRole):
		Forbidden(w, "Unknown role")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "You have an open session for today")
	case errors.Is(err, attendance.ErrNoOpenSession):
		Conflict(w, "You have not clocked in today")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "An attendance record already exists for this employee and date")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Regularization domain errors
	case errors.Is(err, regularization.ErrRequestNotFound):
		NotFound(w, "Regularization request not found")
	case errors.Is(err, regularization.ErrAlreadyDecided):
		Conflict(w, "Regularization request has already been decided")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
