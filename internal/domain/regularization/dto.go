package regularization

import (
	"strings"

	"github.com/sha-shank-883/hrms-pro-sub003/internal/pkg/validator"
)

// ========================================
// REGULARIZATION DTOs
// ========================================

type RequestResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	Date              string  `json:"date"`
	OriginalClockIn   *string `json:"original_clock_in,omitempty"`
	OriginalClockOut  *string `json:"original_clock_out,omitempty"`
	RequestedClockIn  string  `json:"requested_clock_in"`
	RequestedClockOut string  `json:"requested_clock_out"`
	Reason            string  `json:"reason"`
	Status            string  `json:"status"`
	SubmittedBy       string  `json:"submitted_by"`
	DecidedBy         *string `json:"decided_by,omitempty"`
	DecidedAt         *string `json:"decided_at,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type SubmitRequest struct {
	Date              string `json:"date"`                // YYYY-MM-DD
	RequestedClockIn  string `json:"requested_clock_in"`  // HH:MM or HH:MM:SS
	RequestedClockOut string `json:"requested_clock_out"` // HH:MM or HH:MM:SS
	Reason            string `json:"reason"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	inOK, outOK := false, false
	if validator.IsEmpty(r.RequestedClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_clock_in",
			Message: "requested_clock_in is required",
		})
	} else if _, inOK = validator.IsValidTimeOfDay(r.RequestedClockIn); !inOK {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_clock_in",
			Message: "requested_clock_in must be in HH:MM or HH:MM:SS format",
		})
	}

	if validator.IsEmpty(r.RequestedClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_clock_out",
			Message: "requested_clock_out is required",
		})
	} else if _, outOK = validator.IsValidTimeOfDay(r.RequestedClockOut); !outOK {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_clock_out",
			Message: "requested_clock_out must be in HH:MM or HH:MM:SS format",
		})
	}

	if inOK && outOK {
		in, _ := validator.IsValidTimeOfDay(r.RequestedClockIn)
		out, _ := validator.IsValidTimeOfDay(r.RequestedClockOut)
		if out.Before(in) {
			errs = append(errs, validator.ValidationError{
				Field:   "requested_clock_out",
				Message: "requested_clock_out must not be before requested_clock_in",
			})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	} else if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideRequest struct {
	ID       string `json:"-"`
	Decision string `json:"status"` // approved or rejected
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.Decision) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision is required",
		})
	} else if !validator.IsInSlice(strings.ToLower(r.Decision), ValidDecisions) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be one of: " + strings.Join(ValidDecisions, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestFilter struct {
	// Search & Filter
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD, inclusive
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD, inclusive

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *RequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil {
		validStatuses := []string{
			string(StatusPending),
			string(StatusApproved),
			string(StatusRejected),
		}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: pending, approved, rejected",
			})
		}
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListRequestsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Requests   []RequestResponse `json:"requests"`
}
