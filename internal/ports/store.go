package ports

import (
	"context"

	"github.com/jsamuelsen11/batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/batch-service/internal/domain/course"
	"github.com/jsamuelsen11/batch-service/internal/domain/month"
)

// Cascade reports how many descendants a delete removed along with its
// target.
type Cascade struct {
	Courses int
	Months  int
}

// BatchStore persists batches. Implementations assign ID and CreatedAt on
// Add and return independent copies from every read.
type BatchStore interface {
	// AddBatch stores b under a new ID and returns the stored record.
	AddBatch(ctx context.Context, b batch.Batch) (*batch.Batch, error)

	// GetBatch returns domain.ErrNotFound if the batch does not exist.
	GetBatch(ctx context.Context, id string) (*batch.Batch, error)

	// ListBatches returns every batch in creation order.
	ListBatches(ctx context.Context) ([]batch.Batch, error)

	// UpdateBatch applies patch to the stored batch.
	// Returns domain.ErrNotFound if the batch does not exist.
	UpdateBatch(ctx context.Context, id string, patch batch.Patch) error

	// DeleteBatch removes the batch and, atomically, all of its courses and
	// their months. Returns domain.ErrNotFound if the batch does not exist.
	DeleteBatch(ctx context.Context, id string) (Cascade, error)
}

// CourseStore persists courses.
type CourseStore interface {
	// AddCourse returns domain.ErrNotFound if c.BatchID does not reference an
	// existing batch.
	AddCourse(ctx context.Context, c course.Course) (*course.Course, error)
	GetCourse(ctx context.Context, id string) (*course.Course, error)
	ListCourses(ctx context.Context) ([]course.Course, error)
	ListCoursesByBatch(ctx context.Context, batchID string) ([]course.Course, error)
	UpdateCourse(ctx context.Context, id string, patch course.Patch) error

	// DeleteCourse removes the course and its months atomically. The
	// returned Cascade has Courses set to zero.
	DeleteCourse(ctx context.Context, id string) (Cascade, error)
}

// MonthStore persists months.
type MonthStore interface {
	// AddMonth returns domain.ErrNotFound if m.CourseID does not reference an
	// existing course.
	AddMonth(ctx context.Context, m month.Month) (*month.Month, error)
	GetMonth(ctx context.Context, id string) (*month.Month, error)
	ListMonths(ctx context.Context) ([]month.Month, error)
	ListMonthsByCourse(ctx context.Context, courseID string) ([]month.Month, error)
	UpdateMonth(ctx context.Context, id string, patch month.Patch) error
	DeleteMonth(ctx context.Context, id string) error
}

// HierarchyReader is the read side consumed by the hierarchy refresher.
type HierarchyReader interface {
	ListBatches(ctx context.Context) ([]batch.Batch, error)
	ListCourses(ctx context.Context) ([]course.Course, error)
	ListMonths(ctx context.Context) ([]month.Month, error)
}

// HierarchyStore is the full persistence port for the three-tier hierarchy.
// It reports its own health so it can be registered for readiness checks.
type HierarchyStore interface {
	BatchStore
	CourseStore
	MonthStore
	HealthChecker

	// Close releases any underlying resources.
	Close() error
}
