package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/batch-service/internal/domain"
	"github.com/jsamuelsen11/batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/batch-service/internal/domain/course"
	"github.com/jsamuelsen11/batch-service/internal/domain/month"
)

const msgNothingToChange = "must include at least one of name, payment"

// Emptiness and duplicate checks on names belong to the lifecycle service,
// which reports them with user-facing messages. Request validation only
// covers what cannot be expressed once the body is decoded: missing numeric
// fields and empty patches.

// CreateBatchRequest represents the JSON body for creating a batch.
type CreateBatchRequest struct {
	Name string `json:"name"`
}

// UpdateBatchRequest represents the JSON body for renaming a batch.
type UpdateBatchRequest struct {
	Name *string `json:"name,omitempty"`
}

// Validate checks that a name was supplied.
func (r *UpdateBatchRequest) Validate() error {
	if r.Name == nil {
		return &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}
	return nil
}

// Patch converts the request to a domain patch.
func (r *UpdateBatchRequest) Patch() batch.Patch {
	return batch.Patch{Name: r.Name}
}

// CreateCourseRequest represents the JSON body for creating a course.
type CreateCourseRequest struct {
	Name    string `json:"name"`
	BatchID string `json:"batch_id"`
}

// UpdateCourseRequest represents the JSON body for renaming a course. The
// parent batch cannot be changed.
type UpdateCourseRequest struct {
	Name *string `json:"name,omitempty"`
}

// Validate checks that a name was supplied.
func (r *UpdateCourseRequest) Validate() error {
	if r.Name == nil {
		return &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}
	return nil
}

// Patch converts the request to a domain patch.
func (r *UpdateCourseRequest) Patch() course.Patch {
	return course.Patch{Name: r.Name}
}

// CreateMonthRequest represents the JSON body for creating a month.
// Payment accepts either a JSON number or a decimal string.
type CreateMonthRequest struct {
	Name        string           `json:"name"`
	MonthNumber *int             `json:"month_number"`
	CourseID    string           `json:"course_id"`
	Payment     *decimal.Decimal `json:"payment"`
}

// Validate checks that the numeric fields are present. Their ranges are
// checked by the lifecycle service.
func (r *CreateMonthRequest) Validate() error {
	fields := make(map[string]string)

	if r.MonthNumber == nil {
		fields["month_number"] = domain.MsgRequired
	}
	if r.Payment == nil {
		fields["payment"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Draft converts the request to a month draft. Call only after Validate
// succeeds.
func (r *CreateMonthRequest) Draft() month.Draft {
	return month.Draft{
		Name:     r.Name,
		Number:   *r.MonthNumber,
		CourseID: r.CourseID,
		Payment:  *r.Payment,
	}
}

// UpdateMonthRequest represents the JSON body for editing a month. Only the
// name and payment can change; nil means "do not change this field.".
type UpdateMonthRequest struct {
	Name    *string          `json:"name,omitempty"`
	Payment *decimal.Decimal `json:"payment,omitempty"`
}

// Validate checks that at least one field was supplied.
func (r *UpdateMonthRequest) Validate() error {
	if r.Name == nil && r.Payment == nil {
		return &domain.ValidationError{Fields: map[string]string{"body": msgNothingToChange}}
	}
	return nil
}

// Patch converts the request to a domain patch.
func (r *UpdateMonthRequest) Patch() month.Patch {
	return month.Patch{Name: r.Name, Payment: r.Payment}
}
