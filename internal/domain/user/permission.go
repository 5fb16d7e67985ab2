package user

type Permission string

const (
	// Attendance
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceClock   Permission = "attendance.clock"
	PermissionAttendanceManage  Permission = "attendance.manage"
	PermissionAttendanceDelete  Permission = "attendance.delete"

	// Regularization
	PermissionRegularizationSubmit  Permission = "regularization.submit"
	PermissionRegularizationViewOwn Permission = "regularization.view_own"
	PermissionRegularizationViewAll Permission = "regularization.view_all"
	PermissionRegularizationDecide  Permission = "regularization.decide"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceClock,
		PermissionAttendanceManage,
		PermissionAttendanceDelete,
		PermissionRegularizationSubmit,
		PermissionRegularizationViewOwn,
		PermissionRegularizationViewAll,
		PermissionRegularizationDecide,
	},
	RoleManager: {
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceClock,
		PermissionAttendanceManage,
		PermissionAttendanceDelete,
		PermissionRegularizationSubmit,
		PermissionRegularizationViewOwn,
		PermissionRegularizationViewAll,
		PermissionRegularizationDecide,
	},
	RoleEmployee: {
		PermissionAttendanceViewOwn,
		PermissionAttendanceClock,
		PermissionRegularizationSubmit,
		PermissionRegularizationViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
