package attendance

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/attendance"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/employee"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/user"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/pkg/database"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	db     *database.DB
	policy attendance.Policy
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	policy attendance.Policy,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		policy:               policy,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// callerFromContext extracts the caller's employee id and role from the
// verified token claims.
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

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	format := t.In(loc).Format("2006-01-02 15:04:05")
	return &format
}

func (a *AttendanceServiceImpl) toResponse(att *attendance.Attendance) *attendance.AttendanceResponse {
	loc := a.policy.Location()

	resp := &attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		Date:         att.Date.Format("2006-01-02"),
		ClockInTime:  timePtrToString(att.ClockIn, loc),
		ClockOutTime: timePtrToString(att.ClockOut, loc),
		Status:       string(att.Status),
		Notes:        att.Notes,
		CreatedAt:    att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    att.UpdatedAt.Format(time.RFC3339),
	}

	if att.WorkMinutes != nil {
		hours := math.Round(float64(*att.WorkMinutes)/60*100) / 100
		resp.WorkHours = &hours
	}

	return resp
}

// workDay truncates an instant to its calendar day in the policy timezone.
func (a *AttendanceServiceImpl) workDay(t time.Time) time.Time {
	local := t.In(a.policy.Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context) (*attendance.AttendanceResponse, error) {
	employeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(role, user.PermissionAttendanceClock) {
		return nil, user.ErrPermissionDenied
	}

	nowUTC := time.Now().UTC()
	nowLocal := nowUTC.In(a.policy.Location())
	status := a.policy.StatusFor(nowLocal)

	att, err := a.AttendanceRepository.ClockIn(ctx, employeeID, a.workDay(nowUTC), nowUTC, status)
	if err != nil {
		return nil, err
	}

	return a.toResponse(att), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context) (*attendance.AttendanceResponse, error) {
	employeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(role, user.PermissionAttendanceClock) {
		return nil, user.ErrPermissionDenied
	}

	nowUTC := time.Now().UTC()

	att, err := a.AttendanceRepository.ClockOut(ctx, employeeID, a.workDay(nowUTC), nowUTC, a.policy.BreakMinutes)
	if err != nil {
		return nil, err
	}

	return a.toResponse(att), nil
}

// buildClocks combines a work day with optional wall-clock strings in the
// policy timezone. The strings are validated upstream.
func (a *AttendanceServiceImpl) buildClocks(day time.Time, clockInStr, clockOutStr *string) (*time.Time, *time.Time) {
	loc := a.policy.Location()

	combine := func(s *string) *time.Time {
		if s == nil || *s == "" {
			return nil
		}
		tod, ok := validator.IsValidTimeOfDay(*s)
		if !ok {
			return nil
		}
		t := time.Date(day.Year(), day.Month(), day.Day(),
			tod.Hour(), tod.Minute(), tod.Second(), 0, loc).UTC()
		return &t
	}

	return combine(clockInStr), combine(clockOutStr)
}

// deriveRecord fills status and work minutes from the clock values when the
// caller did not pin a status explicitly.
func (a *AttendanceServiceImpl) deriveRecord(att *attendance.Attendance, explicitStatus *string) {
	if att.ClockIn != nil && att.ClockOut != nil {
		mins := a.policy.WorkMinutes(*att.ClockIn, *att.ClockOut)
		att.WorkMinutes = &mins
	} else {
		att.WorkMinutes = nil
	}

	if explicitStatus != nil {
		att.Status = attendance.Status(strings.ToLower(*explicitStatus))
		return
	}

	if att.ClockIn != nil {
		att.Status = a.policy.StatusFor(att.ClockIn.In(a.policy.Location()))
	} else {
		att.Status = attendance.StatusAbsent
	}
}

// CreateAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req *attendance.CreateAttendanceRequest) (*attendance.AttendanceResponse, error) {
	_, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(role, user.PermissionAttendanceManage) {
		return nil, user.ErrPermissionDenied
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	day, _ := validator.IsValidDate(req.Date)
	clockIn, clockOut := a.buildClocks(day, req.ClockInTime, req.ClockOutTime)

	att := &attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       day,
		ClockIn:    clockIn,
		ClockOut:   clockOut,
		Notes:      req.Notes,
	}
	a.deriveRecord(att, req.Status)

	if err := a.AttendanceRepository.Create(ctx, att); err != nil {
		return nil, err
	}

	return a.toResponse(att), nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req *attendance.UpdateAttendanceRequest) (*attendance.AttendanceResponse, error) {
	_, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(role, user.PermissionAttendanceManage) {
		return nil, user.ErrPermissionDenied
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	clocksChanged := req.ClockInTime != nil || req.ClockOutTime != nil
	if clocksChanged {
		clockIn, clockOut := a.buildClocks(att.Date, req.ClockInTime, req.ClockOutTime)
		if req.ClockInTime != nil {
			att.ClockIn = clockIn
		}
		if req.ClockOutTime != nil {
			att.ClockOut = clockOut
		}
		if att.ClockIn != nil && att.ClockOut != nil && att.ClockOut.Before(*att.ClockIn) {
			return nil, validator.ValidationErrors{{
				Field:   "clock_out_time",
				Message: "clock_out_time must not be before clock_in_time",
			}}
		}

		if att.ClockIn != nil && att.ClockOut != nil {
			mins := a.policy.WorkMinutes(*att.ClockIn, *att.ClockOut)
			att.WorkMinutes = &mins
		} else {
			att.WorkMinutes = nil
		}
	}
	if req.Notes != nil {
		att.Notes = req.Notes
	}

	// A manually pinned status survives edits that do not touch the clocks;
	// re-derivation only happens when the clocks themselves moved.
	if req.Status != nil {
		att.Status = attendance.Status(strings.ToLower(*req.Status))
	} else if clocksChanged {
		if att.ClockIn != nil {
			att.Status = a.policy.StatusFor(att.ClockIn.In(a.policy.Location()))
		} else {
			att.Status = attendance.StatusAbsent
		}
	}

	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		return nil, err
	}

	return a.toResponse(att), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	_, role, err := callerFromContext(ctx)
	if err != nil {
		return err
	}
	if !user.HasPermission(role, user.PermissionAttendanceDelete) {
		return user.ErrPermissionDenied
	}

	return a.AttendanceRepository.Delete(ctx, id)
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (*attendance.AttendanceResponse, error) {
	employeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if att.EmployeeID != employeeID && !user.HasPermission(role, user.PermissionAttendanceViewAll) {
		return nil, user.ErrPermissionDenied
	}

	return a.toResponse(att), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter *attendance.AttendanceFilter) (*attendance.ListAttendanceResponse, error) {
	employeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if filter == nil {
		filter = &attendance.AttendanceFilter{}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	// Callers without the view-all permission only ever see their own rows.
	if !user.HasPermission(role, user.PermissionAttendanceViewAll) {
		filter.EmployeeID = &employeeID
		filter.EmployeeName = nil
	}

	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for i := range attendances {
		responses = append(responses, *a.toResponse(&attendances[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return &attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}
