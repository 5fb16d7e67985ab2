package employee

import "time"

// Employee mirrors the directory service's record. The directory owns this
// data; the attendance core only reads it.
type Employee struct {
	ID        string
	FullName  string
	Email     string
	Position  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
