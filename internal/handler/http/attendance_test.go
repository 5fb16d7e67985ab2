package http

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttendanceFilter(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/v1/attendance?page=2&limit=50&employee_name=asha&start_date=2024-01-01&end_date=2024-01-31&status=late&sort_by=clock_in_time&sort_order=asc", nil)

	filter := parseAttendanceFilter(r)

	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 50, filter.Limit)
	require.NotNil(t, filter.EmployeeName)
	assert.Equal(t, "asha", *filter.EmployeeName)
	require.NotNil(t, filter.StartDate)
	assert.Equal(t, "2024-01-01", *filter.StartDate)
	require.NotNil(t, filter.Status)
	assert.Equal(t, "late", *filter.Status)
	assert.Equal(t, "clock_in_time", filter.SortBy)
	assert.Equal(t, "asc", filter.SortOrder)
}

func TestParseAttendanceFilter_Empty(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/attendance", nil)

	filter := parseAttendanceFilter(r)

	assert.Zero(t, filter.Page)
	assert.Zero(t, filter.Limit)
	assert.Nil(t, filter.EmployeeID)
	assert.Nil(t, filter.Status)
	assert.Empty(t, filter.SortBy)

	// Garbage numbers are ignored, defaults come from filter validation.
	r = httptest.NewRequest("GET", "/api/v1/attendance?page=abc&limit=-", nil)
	filter = parseAttendanceFilter(r)
	assert.Zero(t, filter.Page)
	assert.Zero(t, filter.Limit)
}
