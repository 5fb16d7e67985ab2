package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/attendance"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/auth"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/employee"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/regularization"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/user"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) Response {
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid token", auth.ErrInvalidToken, 401, "UNAUTHORIZED"},
		{"permission denied", user.ErrPermissionDenied, 403, "FORBIDDEN"},
		{"unknown role", user.ErrUnknownRole, 403, "FORBIDDEN"},
		{"employee not found", employee.ErrEmployeeNotFound, 404, "NOT_FOUND"},
		{"already clocked in", attendance.ErrAlreadyClockedIn, 409, "CONFLICT"},
		{"no open session", attendance.ErrNoOpenSession, 409, "CONFLICT"},
		{"duplicate record", attendance.ErrDuplicateRecord, 409, "CONFLICT"},
		{"record not found", attendance.ErrRecordNotFound, 404, "NOT_FOUND"},
		{"request not found", regularization.ErrRequestNotFound, 404, "NOT_FOUND"},
		{"already decided", regularization.ErrAlreadyDecided, 409, "CONFLICT"},
		{"unmapped error", errors.New("connection reset"), 500, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeBody(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "date", Message: "date is required"},
	})

	assert.Equal(t, 422, rec.Code)
	resp := decodeBody(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "date is required", resp.Error.Details["date"])
}

func TestSuccessEnvelopes(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, "Clocked in successfully", map[string]string{"id": "abc"})
	assert.Equal(t, 201, rec.Code)
	resp := decodeBody(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Clocked in successfully", resp.Message)
	assert.Nil(t, resp.Error)

	rec = httptest.NewRecorder()
	SuccessWithMeta(rec, []string{}, &Meta{Page: 1, Limit: 20, TotalItems: 0, TotalPages: 0})
	assert.Equal(t, 200, rec.Code)
	resp = decodeBody(t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Page)
}
