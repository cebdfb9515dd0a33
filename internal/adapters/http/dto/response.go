// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/batch-service/internal/domain/course"
	"github.com/jsamuelsen11/batch-service/internal/domain/hierarchy"
	"github.com/jsamuelsen11/batch-service/internal/domain/month"
	"github.com/jsamuelsen11/batch-service/internal/ports"
)

// paymentPlaces is the number of decimal places payments are rendered with.
const paymentPlaces = 2

// FormatPayment renders a payment amount for display.
func FormatPayment(d decimal.Decimal) string {
	return d.StringFixed(paymentPlaces)
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// BatchResponse represents a single batch in HTTP responses.
type BatchResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// ToBatchResponse converts a domain Batch to an HTTP response DTO.
func ToBatchResponse(b *batch.Batch) BatchResponse {
	return BatchResponse{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: formatTime(b.CreatedAt),
	}
}

// CourseResponse represents a single course in HTTP responses. BatchName is
// populated only in list views.
type CourseResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BatchID   string `json:"batch_id"`
	BatchName string `json:"batch_name,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ToCourseResponse converts a domain Course to an HTTP response DTO.
func ToCourseResponse(c *course.Course) CourseResponse {
	return CourseResponse{
		ID:        c.ID,
		Name:      c.Name,
		BatchID:   c.BatchID,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

// MonthResponse represents a single month in HTTP responses. CourseName and
// BatchName are populated only in list views.
type MonthResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MonthNumber int    `json:"month_number"`
	Payment     string `json:"payment"`
	CourseID    string `json:"course_id"`
	CourseName  string `json:"course_name,omitempty"`
	BatchName   string `json:"batch_name,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// ToMonthResponse converts a domain Month to an HTTP response DTO.
func ToMonthResponse(m *month.Month) MonthResponse {
	return MonthResponse{
		ID:          m.ID,
		Name:        m.Name,
		MonthNumber: m.Number,
		Payment:     FormatPayment(m.Payment),
		CourseID:    m.CourseID,
		CreatedAt:   formatTime(m.CreatedAt),
	}
}

// OptionResponse is one entry of a parent picker.
type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// BatchListResponse represents the batch rows of the current view.
type BatchListResponse struct {
	Batches []BatchResponse `json:"batches"`
	Count   int             `json:"count"`
	Version uint64          `json:"version"`
}

// CourseListResponse represents the course rows of the current view.
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	Count   int              `json:"count"`
	Version uint64           `json:"version"`
}

// MonthListResponse represents the month rows of the current view.
type MonthListResponse struct {
	Months  []MonthResponse `json:"months"`
	Count   int             `json:"count"`
	Version uint64          `json:"version"`
}

// HierarchyResponse is the full published view.
type HierarchyResponse struct {
	Version       uint64           `json:"version"`
	RefreshedAt   string           `json:"refreshed_at,omitempty"`
	Batches       []BatchResponse  `json:"batches"`
	Courses       []CourseResponse `json:"courses"`
	Months        []MonthResponse  `json:"months"`
	BatchOptions  []OptionResponse `json:"batch_options"`
	CourseOptions []OptionResponse `json:"course_options"`
}

// ToBatchListResponse converts the batch rows of v.
func ToBatchListResponse(v hierarchy.View) BatchListResponse {
	rows := batchRows(v.Batches)
	return BatchListResponse{Batches: rows, Count: len(rows), Version: v.Version}
}

// ToCourseListResponse converts the course rows of v.
func ToCourseListResponse(v hierarchy.View) CourseListResponse {
	rows := courseRows(v.Courses)
	return CourseListResponse{Courses: rows, Count: len(rows), Version: v.Version}
}

// ToMonthListResponse converts the month rows of v.
func ToMonthListResponse(v hierarchy.View) MonthListResponse {
	rows := monthRows(v.Months)
	return MonthListResponse{Months: rows, Count: len(rows), Version: v.Version}
}

// ToHierarchyResponse converts a published view. Slices are never null in
// the encoded output.
func ToHierarchyResponse(v hierarchy.View) HierarchyResponse {
	resp := HierarchyResponse{
		Version:       v.Version,
		Batches:       batchRows(v.Batches),
		Courses:       courseRows(v.Courses),
		Months:        monthRows(v.Months),
		BatchOptions:  options(v.BatchOptions),
		CourseOptions: options(v.CourseOptions),
	}
	if !v.RefreshedAt.IsZero() {
		resp.RefreshedAt = v.RefreshedAt.Format(time.RFC3339Nano)
	}
	return resp
}

func batchRows(rows []hierarchy.BatchRow) []BatchResponse {
	out := make([]BatchResponse, len(rows))
	for i, r := range rows {
		out[i] = BatchResponse{ID: r.ID, Name: r.Name, CreatedAt: formatTime(r.CreatedAt)}
	}
	return out
}

func courseRows(rows []hierarchy.CourseRow) []CourseResponse {
	out := make([]CourseResponse, len(rows))
	for i, r := range rows {
		out[i] = CourseResponse{
			ID:        r.ID,
			Name:      r.Name,
			BatchID:   r.BatchID,
			BatchName: r.BatchName,
			CreatedAt: formatTime(r.CreatedAt),
		}
	}
	return out
}

func monthRows(rows []hierarchy.MonthRow) []MonthResponse {
	out := make([]MonthResponse, len(rows))
	for i, r := range rows {
		out[i] = MonthResponse{
			ID:          r.ID,
			Name:        r.Name,
			MonthNumber: r.Number,
			Payment:     FormatPayment(r.Payment),
			CourseID:    r.CourseID,
			CourseName:  r.CourseName,
			BatchName:   r.BatchName,
			CreatedAt:   formatTime(r.CreatedAt),
		}
	}
	return out
}

func options(opts []hierarchy.Option) []OptionResponse {
	out := make([]OptionResponse, len(opts))
	for i, o := range opts {
		out[i] = OptionResponse{Value: o.Value, Label: o.Label}
	}
	return out
}

// UpdateResponse wraps the entity returned by an update. Changed is false
// when the request matched the stored values and nothing was written.
type UpdateResponse[T any] struct {
	Item    T    `json:"item"`
	Changed bool `json:"changed"`
}

// DeleteResponse reports a completed delete and how many descendants were
// removed with it.
type DeleteResponse struct {
	ID             string `json:"id"`
	CoursesDeleted int    `json:"courses_deleted"`
	MonthsDeleted  int    `json:"months_deleted"`
}

// ToDeleteResponse converts a delete outcome for the entity id.
func ToDeleteResponse(id string, out ports.DeleteOutcome) DeleteResponse {
	return DeleteResponse{
		ID:             id,
		CoursesDeleted: out.Cascade.Courses,
		MonthsDeleted:  out.Cascade.Months,
	}
}
