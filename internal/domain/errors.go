package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound             = errors.New("not found")
	ErrValidation           = errors.New("validation error")
	ErrConflict             = errors.New("conflict")
	ErrUnavailable          = errors.New("unavailable")
	ErrConfirmationRequired = errors.New("confirmation required")
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Reason classifies why a proposed create or update was not admitted.
type Reason string

const (
	ReasonEmptyField      Reason = "EMPTY_FIELD"
	ReasonDuplicateName   Reason = "DUPLICATE_NAME"
	ReasonDuplicateNumber Reason = "DUPLICATE_NUMBER"
	ReasonInvalidNumeric  Reason = "INVALID_NUMERIC"
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	return string(r)
}

// RejectionError is returned when an admission check refuses a mutation.
// Duplicate reasons unwrap to ErrConflict; every other reason unwraps to
// ErrValidation.
type RejectionError struct {
	Reason  Reason
	Field   string
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func (e *RejectionError) Unwrap() error {
	switch e.Reason {
	case ReasonDuplicateName, ReasonDuplicateNumber:
		return ErrConflict
	default:
		return ErrValidation
	}
}

// SameName reports whether two entity names collide under the
// case-insensitive uniqueness rules.
func SameName(a, b string) bool {
	return strings.EqualFold(a, b)
}
