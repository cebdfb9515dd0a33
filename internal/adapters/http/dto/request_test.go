package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/batch-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/batch-service/internal/domain"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestUpdateNameRequests_Validate(t *testing.T) {
	t.Parallel()

	t.Run("batch without name", func(t *testing.T) {
		t.Parallel()
		requireValidationField(t, (&dto.UpdateBatchRequest{}).Validate(), "name")
	})

	t.Run("course without name", func(t *testing.T) {
		t.Parallel()
		requireValidationField(t, (&dto.UpdateCourseRequest{}).Validate(), "name")
	})

	t.Run("empty string is passed through", func(t *testing.T) {
		t.Parallel()
		req := dto.UpdateBatchRequest{Name: stringPtr("")}
		if err := req.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
		if p := req.Patch(); p.Name == nil || *p.Name != "" {
			t.Errorf("Patch().Name = %v, want pointer to empty string", p.Name)
		}
	})
}

func TestCreateMonthRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateMonthRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid request passes",
			req: dto.CreateMonthRequest{
				Name:        "January",
				MonthNumber: intPtr(1),
				CourseID:    "c-1",
				Payment:     decimalPtr("100.50"),
			},
		},
		{
			name: "zero values are left to the service",
			req: dto.CreateMonthRequest{
				MonthNumber: intPtr(0),
				Payment:     decimalPtr("0"),
			},
		},
		{
			name:      "missing month number",
			req:       dto.CreateMonthRequest{Name: "January", Payment: decimalPtr("1")},
			wantErr:   true,
			wantField: "month_number",
		},
		{
			name:      "missing payment",
			req:       dto.CreateMonthRequest{Name: "January", MonthNumber: intPtr(1)},
			wantErr:   true,
			wantField: "payment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateMonthRequest_DecodesPaymentForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "json number", body: `{"name":"Jan","month_number":1,"course_id":"c","payment":100.5}`, want: "100.5"},
		{name: "json string", body: `{"name":"Jan","month_number":1,"course_id":"c","payment":"0.10"}`, want: "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var req dto.CreateMonthRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if err := req.Validate(); err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			d := req.Draft()
			if !d.Payment.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Draft().Payment = %s, want %s", d.Payment, tt.want)
			}
			if d.Number != 1 || d.CourseID != "c" {
				t.Errorf("Draft() = %+v, want number 1 in course c", d)
			}
		})
	}
}

func TestUpdateMonthRequest_Validate(t *testing.T) {
	t.Parallel()

	requireValidationField(t, (&dto.UpdateMonthRequest{}).Validate(), "body")

	for _, req := range []dto.UpdateMonthRequest{
		{Name: stringPtr("March")},
		{Payment: decimalPtr("12")},
		{Name: stringPtr("March"), Payment: decimalPtr("12")},
	} {
		if err := req.Validate(); err != nil {
			t.Errorf("Validate(%+v) = %v, want nil", req, err)
		}
	}
}
