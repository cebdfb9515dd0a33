package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/batch-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/batch-service/internal/domain/hierarchy"
	"github.com/jsamuelsen11/batch-service/internal/domain/month"
	"github.com/jsamuelsen11/batch-service/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func TestFormatPayment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"100", "100.00"},
		{"100.5", "100.50"},
		{"0.1", "0.10"},
		{"12.345", "12.35"},
	}

	for _, tt := range tests {
		if got := dto.FormatPayment(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatPayment(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToMonthResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToMonthResponse(&month.Month{
		ID:        "m-1",
		Name:      "January",
		Number:    1,
		CourseID:  "c-1",
		Payment:   decimal.RequireFromString("99.9"),
		CreatedAt: testTime,
	})

	if got.Payment != "99.90" {
		t.Errorf("Payment = %q, want %q", got.Payment, "99.90")
	}
	if got.MonthNumber != 1 {
		t.Errorf("MonthNumber = %d, want 1", got.MonthNumber)
	}
	if got.CreatedAt != "2026-02-12T15:04:05Z" {
		t.Errorf("CreatedAt = %q, want RFC3339", got.CreatedAt)
	}
	if got.CourseName != "" || got.BatchName != "" {
		t.Errorf("names = %q/%q, want empty for single entity", got.CourseName, got.BatchName)
	}
}

func TestToHierarchyResponse(t *testing.T) {
	t.Parallel()

	v := hierarchy.View{
		Version:     3,
		RefreshedAt: testTime,
		Courses: []hierarchy.CourseRow{
			{ID: "c-1", Name: "Math", BatchID: "b-x", BatchName: hierarchy.Unknown, CreatedAt: testTime},
		},
		Months: []hierarchy.MonthRow{
			{ID: "m-1", Name: "Jan", Number: 1, Payment: decimal.NewFromInt(5), CourseID: "c-1", CourseName: "Math", BatchName: hierarchy.Unknown},
		},
		CourseOptions: []hierarchy.Option{{Value: "c-1", Label: "Math (Unknown Batch)"}},
	}

	got := dto.ToHierarchyResponse(v)

	if got.Version != 3 {
		t.Errorf("Version = %d, want 3", got.Version)
	}
	if got.Courses[0].BatchName != "Unknown" {
		t.Errorf("Courses[0].BatchName = %q, want Unknown", got.Courses[0].BatchName)
	}
	if got.Months[0].Payment != "5.00" {
		t.Errorf("Months[0].Payment = %q, want 5.00", got.Months[0].Payment)
	}
	if got.CourseOptions[0].Label != "Math (Unknown Batch)" {
		t.Errorf("CourseOptions[0].Label = %q", got.CourseOptions[0].Label)
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	// Absent rows encode as empty arrays, not null.
	if !strings.Contains(string(raw), `"batches":[]`) || !strings.Contains(string(raw), `"batch_options":[]`) {
		t.Errorf("encoded = %s, want empty arrays for batches and batch_options", raw)
	}
}

func TestToListResponses_Count(t *testing.T) {
	t.Parallel()

	v := hierarchy.View{
		Version: 7,
		Batches: []hierarchy.BatchRow{{ID: "b-1", Name: "Spring"}, {ID: "b-2", Name: "Autumn"}},
	}

	batches := dto.ToBatchListResponse(v)
	if batches.Count != 2 || batches.Version != 7 {
		t.Errorf("ToBatchListResponse() = count %d version %d, want 2/7", batches.Count, batches.Version)
	}
	if courses := dto.ToCourseListResponse(v); courses.Count != 0 || courses.Courses == nil {
		t.Errorf("ToCourseListResponse() = %+v, want empty non-nil", courses)
	}
	if months := dto.ToMonthListResponse(v); months.Count != 0 || months.Months == nil {
		t.Errorf("ToMonthListResponse() = %+v, want empty non-nil", months)
	}
}

func TestToDeleteResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToDeleteResponse("b-1", ports.DeleteOutcome{Cascade: ports.Cascade{Courses: 2, Months: 5}})
	want := dto.DeleteResponse{ID: "b-1", CoursesDeleted: 2, MonthsDeleted: 5}
	if got != want {
		t.Errorf("ToDeleteResponse() = %+v, want %+v", got, want)
	}
}
