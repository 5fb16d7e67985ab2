package employee

import "context"

// EmployeeRepository is the read-only view of the employee directory the
// attendance core consumes.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (*Employee, error)
}
