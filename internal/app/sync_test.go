package app

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/batch-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/batch-service/internal/domain/hierarchy"
)

type flakyReader struct {
	*memory.Store
	err error
}

func (f *flakyReader) ListBatches(ctx context.Context) ([]batch.Batch, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.Store.ListBatches(ctx)
}

func TestHierarchySync_InitialView(t *testing.T) {
	t.Parallel()

	hs := NewHierarchySync(memory.New(), nil)
	v := hs.Current()

	if v.Version != 0 {
		t.Errorf("Version = %d, want 0", v.Version)
	}
	if v.Batches == nil || v.BatchOptions == nil || v.Months == nil {
		t.Error("initial view slices should be empty, not nil")
	}
}

func TestHierarchySync_Refresh(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := memory.New()
	hs := NewHierarchySync(store, discardLogger())

	first, err := hs.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if first.Version != 1 {
		t.Errorf("Version = %d, want 1", first.Version)
	}
	if first.RefreshedAt.IsZero() {
		t.Error("RefreshedAt is zero")
	}

	b, err := store.AddBatch(ctx, batch.Batch{Name: "Spring"})
	if err != nil {
		t.Fatalf("AddBatch() error = %v", err)
	}

	second, err := hs.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if second.Version != 2 {
		t.Errorf("Version = %d, want 2", second.Version)
	}
	want := []hierarchy.Option{{Value: b.ID, Label: "Spring"}}
	if len(second.BatchOptions) != 1 || second.BatchOptions[0] != want[0] {
		t.Errorf("BatchOptions = %+v, want %+v", second.BatchOptions, want)
	}
	if got := hs.Current().Version; got != 2 {
		t.Errorf("Current().Version = %d, want 2", got)
	}
}

func TestHierarchySync_FailedRefreshKeepsView(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reader := &flakyReader{Store: memory.New()}
	hs := NewHierarchySync(reader, discardLogger())
	if _, err := hs.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	reader.err = errors.New("store offline")
	if _, err := hs.Refresh(ctx); !errors.Is(err, reader.err) {
		t.Fatalf("Refresh() error = %v, want %v", err, reader.err)
	}
	if got := hs.Current().Version; got != 1 {
		t.Errorf("Current().Version = %d, want 1 after failed refresh", got)
	}
}
