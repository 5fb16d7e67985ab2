package regularization

import (
	"strings"
	"testing"

	"github.com/sha-shank-883/hrms-pro-sub003/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func TestSubmitRequestValidate(t *testing.T) {
	valid := SubmitRequest{
		Date:              "2024-01-10",
		RequestedClockIn:  "09:00",
		RequestedClockOut: "18:00",
		Reason:            "forgot badge",
	}

	tests := []struct {
		name      string
		mutate    func(r *SubmitRequest)
		wantField string
	}{
		{"valid request", func(r *SubmitRequest) {}, ""},
		{"missing date", func(r *SubmitRequest) { r.Date = "" }, "date"},
		{"bad date", func(r *SubmitRequest) { r.Date = "Jan 10" }, "date"},
		{"missing clock in", func(r *SubmitRequest) { r.RequestedClockIn = "" }, "requested_clock_in"},
		{"bad clock in", func(r *SubmitRequest) { r.RequestedClockIn = "25:99" }, "requested_clock_in"},
		{"missing clock out", func(r *SubmitRequest) { r.RequestedClockOut = "" }, "requested_clock_out"},
		{"clock out before clock in", func(r *SubmitRequest) {
			r.RequestedClockIn = "18:00"
			r.RequestedClockOut = "09:00"
		}, "requested_clock_out"},
		{"missing reason", func(r *SubmitRequest) { r.Reason = "  " }, "reason"},
		{"reason too long", func(r *SubmitRequest) { r.Reason = strings.Repeat("x", 501) }, "reason"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			verrs, ok := err.(validator.ValidationErrors)
			if !ok {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if _, found := verrs.ToMap()[tt.wantField]; !found {
				t.Errorf("expected error on field %q, got %v", tt.wantField, verrs)
			}
		})
	}
}

func TestDecideRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     DecideRequest
		wantErr bool
	}{
		{"approve", DecideRequest{ID: "req-1", Decision: "approved"}, false},
		{"reject", DecideRequest{ID: "req-1", Decision: "rejected"}, false},
		{"mixed case decision", DecideRequest{ID: "req-1", Decision: "Approved"}, false},
		{"missing id", DecideRequest{Decision: "approved"}, true},
		{"missing decision", DecideRequest{ID: "req-1"}, true},
		{"pending is not a decision", DecideRequest{ID: "req-1", Decision: "pending"}, true},
		{"unknown decision", DecideRequest{ID: "req-1", Decision: "maybe"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequestFilterDefaults(t *testing.T) {
	filter := &RequestFilter{}
	if err := filter.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if filter.Page != 1 || filter.Limit != 20 {
		t.Errorf("defaults = page %d limit %d, want 1 and 20", filter.Page, filter.Limit)
	}

	bad := &RequestFilter{Status: strPtr("undecided")}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unknown status")
	}
}
