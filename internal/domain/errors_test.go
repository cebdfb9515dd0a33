package domain_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/batch-service/internal/domain"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"payment":      domain.MsgRequired,
		"month_number": domain.MsgRequired,
	}}

	want := "validation error: month_number: is required; payment: is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(ValidationError, ErrValidation) = false, want true")
	}
}

func TestRejectionError_Unwrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		reason domain.Reason
		want   error
	}{
		{reason: domain.ReasonEmptyField, want: domain.ErrValidation},
		{reason: domain.ReasonInvalidNumeric, want: domain.ErrValidation},
		{reason: domain.ReasonDuplicateName, want: domain.ErrConflict},
		{reason: domain.ReasonDuplicateNumber, want: domain.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.reason.String(), func(t *testing.T) {
			t.Parallel()

			var err error = &domain.RejectionError{Reason: tt.reason, Field: "name", Message: "nope"}
			if !errors.Is(err, tt.want) {
				t.Errorf("errors.Is(%v, %v) = false, want true", err, tt.want)
			}

			var rej *domain.RejectionError
			if !errors.As(err, &rej) || rej.Reason != tt.reason {
				t.Errorf("errors.As() reason = %v, want %v", rej, tt.reason)
			}
		})
	}
}

func TestRejectionError_Error(t *testing.T) {
	t.Parallel()

	err := &domain.RejectionError{
		Reason:  domain.ReasonDuplicateName,
		Field:   "name",
		Message: "Batch with this name already exists",
	}
	want := "DUPLICATE_NAME: Batch with this name already exists"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSameName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want bool
	}{
		{a: "Spring 2024", b: "spring 2024", want: true},
		{a: "MATH", b: "math", want: true},
		{a: "Math", b: "Maths", want: false},
		{a: "", b: "", want: true},
	}

	for _, tt := range tests {
		if got := domain.SameName(tt.a, tt.b); got != tt.want {
			t.Errorf("SameName(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
