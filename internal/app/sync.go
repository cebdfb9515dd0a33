package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/batch-service/internal/domain/hierarchy"
	"github.com/jsamuelsen11/batch-service/internal/ports"
)

// Compile-time check that HierarchySync implements ports.HierarchyViewer.
var _ ports.HierarchyViewer = (*HierarchySync)(nil)

// HierarchySync rebuilds the derived hierarchy view from the store and
// publishes it. Every Refresh reads the store anew; nothing is cached between
// refreshes except the last published view.
type HierarchySync struct {
	reader ports.HierarchyReader
	now    func() time.Time
	logger *slog.Logger

	// refreshMu serializes Refresh so that views are published in the order
	// their reads happened.
	refreshMu sync.Mutex

	mu   sync.RWMutex
	view hierarchy.View
}

// NewHierarchySync creates a HierarchySync over reader. The initial view is
// empty with Version 0 until the first Refresh.
func NewHierarchySync(reader ports.HierarchyReader, logger *slog.Logger) *HierarchySync {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &HierarchySync{
		reader: reader,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
		view:   hierarchy.Build(nil, nil, nil),
	}
}

// Refresh reads all batches, courses and months, derives the view and
// publishes it under the next version. On error the previously published
// view stays current.
func (h *HierarchySync) Refresh(ctx context.Context) (hierarchy.View, error) {
	h.refreshMu.Lock()
	defer h.refreshMu.Unlock()

	batches, err := h.reader.ListBatches(ctx)
	if err != nil {
		return hierarchy.View{}, h.refreshFailed(ctx, fmt.Errorf("listing batches: %w", err))
	}
	courses, err := h.reader.ListCourses(ctx)
	if err != nil {
		return hierarchy.View{}, h.refreshFailed(ctx, fmt.Errorf("listing courses: %w", err))
	}
	months, err := h.reader.ListMonths(ctx)
	if err != nil {
		return hierarchy.View{}, h.refreshFailed(ctx, fmt.Errorf("listing months: %w", err))
	}

	v := hierarchy.Build(batches, courses, months)
	v.RefreshedAt = h.now()

	h.mu.Lock()
	v.Version = h.view.Version + 1
	h.view = v
	h.mu.Unlock()

	h.logger.DebugContext(ctx, "hierarchy view published",
		slog.Uint64("version", v.Version),
		slog.Int("batches", len(v.Batches)),
		slog.Int("courses", len(v.Courses)),
		slog.Int("months", len(v.Months)),
	)
	return v, nil
}

// Current returns the last published view. The returned slices are shared
// and must not be modified.
func (h *HierarchySync) Current() hierarchy.View {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.view
}

func (h *HierarchySync) refreshFailed(ctx context.Context, err error) error {
	h.logger.ErrorContext(ctx, "failed to refresh hierarchy view",
		slog.String("operation", "Refresh"),
		slog.Any("error", err),
	)
	return err
}
