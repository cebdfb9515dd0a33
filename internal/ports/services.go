package ports

import (
	"context"

	"github.com/jsamuelsen11/batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/batch-service/internal/domain/course"
	"github.com/jsamuelsen11/batch-service/internal/domain/hierarchy"
	"github.com/jsamuelsen11/batch-service/internal/domain/month"
)

// DeleteOutcome describes a delete that did not fail. Declined is true when
// the user refused the confirmation prompt, in which case nothing was
// removed and Prompt holds the question that was asked.
type DeleteOutcome struct {
	Declined bool
	Prompt   string
	Cascade  Cascade
}

// LifecycleService defines the service port for creating, editing, and
// deleting hierarchy entities. Implemented by the application layer; called
// by inbound adapters (handlers).
//
// Rejected creates and updates return a *domain.RejectionError. Updates
// report changed=false when the proposed values equal the stored ones; no
// write happens in that case.
type LifecycleService interface {
	CreateBatch(ctx context.Context, name string) (*batch.Batch, error)
	GetBatch(ctx context.Context, id string) (*batch.Batch, error)
	UpdateBatch(ctx context.Context, id string, patch batch.Patch) (*batch.Batch, bool, error)
	DeleteBatch(ctx context.Context, id string) (DeleteOutcome, error)

	// CreateCourse returns domain.ErrNotFound if batchID does not exist.
	CreateCourse(ctx context.Context, name, batchID string) (*course.Course, error)
	GetCourse(ctx context.Context, id string) (*course.Course, error)
	UpdateCourse(ctx context.Context, id string, patch course.Patch) (*course.Course, bool, error)
	DeleteCourse(ctx context.Context, id string) (DeleteOutcome, error)

	// CreateMonth returns domain.ErrNotFound if the draft's course does not
	// exist.
	CreateMonth(ctx context.Context, d month.Draft) (*month.Month, error)
	GetMonth(ctx context.Context, id string) (*month.Month, error)
	UpdateMonth(ctx context.Context, id string, patch month.Patch) (*month.Month, bool, error)
	DeleteMonth(ctx context.Context, id string) (DeleteOutcome, error)
}

// Refresher recomputes and publishes the hierarchy view.
type Refresher interface {
	Refresh(ctx context.Context) (hierarchy.View, error)
}

// HierarchyViewer exposes the most recently published view.
type HierarchyViewer interface {
	Refresher

	// Current returns the last published view without touching the store.
	Current() hierarchy.View
}
