package regularization

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/attendance"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/regularization"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/user"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/pkg/database"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/pkg/validator"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/repository/postgresql"
)

type RequestServiceImpl struct {
	db     *database.DB
	policy attendance.Policy
	regularization.RequestRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewRequestService(
	db *database.DB,
	policy attendance.Policy,
	requestRepo regularization.RequestRepository,
	attendanceRepo attendance.AttendanceRepository,
) regularization.RequestService {
	return &RequestServiceImpl{
		db:                db,
		policy:            policy,
		RequestRepository: requestRepo,
		attendanceRepo:    attendanceRepo,
	}
}

func callerFromContext(ctx context.Context) (string, user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", "", fmt.Errorf("role claim is missing or invalid")
	}
	role, ok := user.ParseRole(roleStr)
	if !ok {
		return "", "", user.ErrUnknownRole
	}

	return employeeID, role, nil
}

func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	format := t.In(loc).Format("2006-01-02 15:04:05")
	return &format
}

func (s *RequestServiceImpl) toResponse(req *regularization.Request) *regularization.RequestResponse {
	loc := s.policy.Location()

	resp := &regularization.RequestResponse{
		ID:                req.ID,
		EmployeeID:        req.EmployeeID,
		EmployeeName:      req.EmployeeName,
		Date:              req.Date.Format("2006-01-02"),
		OriginalClockIn:   timePtrToString(req.OriginalClockIn, loc),
		OriginalClockOut:  timePtrToString(req.OriginalClockOut, loc),
		RequestedClockIn:  req.RequestedClockIn.In(loc).Format("2006-01-02 15:04:05"),
		RequestedClockOut: req.RequestedClockOut.In(loc).Format("2006-01-02 15:04:05"),
		Reason:            req.Reason,
		Status:            string(req.Status),
		SubmittedBy:       req.SubmittedBy,
		DecidedBy:         req.DecidedBy,
		CreatedAt:         req.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         req.UpdatedAt.Format(time.RFC3339),
	}

	if req.DecidedAt != nil {
		decidedAt := req.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}

	return resp
}

// combine anchors a wall-clock value onto a work day in the policy timezone.
func (s *RequestServiceImpl) combine(day time.Time, clock string) time.Time {
	tod, _ := validator.IsValidTimeOfDay(clock)
	return time.Date(day.Year(), day.Month(), day.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, s.policy.Location()).UTC()
}

// Submit implements regularization.RequestService.
func (s *RequestServiceImpl) Submit(ctx context.Context, req *regularization.SubmitRequest) (*regularization.RequestResponse, error) {
	employeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(role, user.PermissionRegularizationSubmit) {
		return nil, user.ErrPermissionDenied
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	day, _ := validator.IsValidDate(req.Date)

	// Snapshot the current clock values of the target day. The attendance
	// record itself is left untouched until approval.
	var originalClockIn, originalClockOut *time.Time
	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		originalClockIn = existing.ClockIn
		originalClockOut = existing.ClockOut
	}

	request := &regularization.Request{
		EmployeeID:        employeeID,
		Date:              day,
		OriginalClockIn:   originalClockIn,
		OriginalClockOut:  originalClockOut,
		RequestedClockIn:  s.combine(day, req.RequestedClockIn),
		RequestedClockOut: s.combine(day, req.RequestedClockOut),
		Reason:            req.Reason,
		Status:            regularization.StatusPending,
		SubmittedBy:       employeeID,
	}

	if err := s.RequestRepository.Create(ctx, request); err != nil {
		return nil, err
	}

	return s.toResponse(request), nil
}

// Decide implements regularization.RequestService.
//
// The status transition and the attendance correction commit or roll back
// together; a request can never read approved while the record still holds
// the old clocks.
func (s *RequestServiceImpl) Decide(ctx context.Context, req *regularization.DecideRequest) (*regularization.RequestResponse, error) {
	deciderID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(role, user.PermissionRegularizationDecide) {
		return nil, user.ErrPermissionDenied
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	status := regularization.RequestStatus(strings.ToLower(req.Decision))
	now := time.Now().UTC()

	var decided *regularization.Request
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		decided, err = s.RequestRepository.Decide(txCtx, req.ID, status, deciderID, now)
		if err != nil {
			return err
		}

		if status != regularization.StatusApproved {
			return nil
		}

		// An approved correction marks the day present regardless of the
		// requested clock-in; the lateness was what got regularized.
		mins := s.policy.WorkMinutes(decided.RequestedClockIn, decided.RequestedClockOut)
		att := &attendance.Attendance{
			EmployeeID:  decided.EmployeeID,
			Date:        decided.Date,
			ClockIn:     &decided.RequestedClockIn,
			ClockOut:    &decided.RequestedClockOut,
			WorkMinutes: &mins,
			Status:      attendance.StatusPresent,
		}

		return s.attendanceRepo.Upsert(txCtx, att)
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(decided), nil
}

// GetRequest implements regularization.RequestService.
func (s *RequestServiceImpl) GetRequest(ctx context.Context, id string) (*regularization.RequestResponse, error) {
	employeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	request, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.EmployeeID != employeeID && !user.HasPermission(role, user.PermissionRegularizationViewAll) {
		return nil, user.ErrPermissionDenied
	}

	return s.toResponse(request), nil
}

// ListRequests implements regularization.RequestService.
func (s *RequestServiceImpl) ListRequests(ctx context.Context, filter *regularization.RequestFilter) (*regularization.ListRequestsResponse, error) {
	employeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if filter == nil {
		filter = &regularization.RequestFilter{}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if !user.HasPermission(role, user.PermissionRegularizationViewAll) {
		filter.EmployeeID = &employeeID
	}

	requests, total, err := s.RequestRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]regularization.RequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *s.toResponse(&requests[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return &regularization.ListRequestsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Requests:   responses,
	}, nil
}
