package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/batch-service/internal/adapters/store/storetest"
	"github.com/jsamuelsen11/batch-service/internal/domain"
	"github.com/jsamuelsen11/batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/batch-service/internal/domain/course"
	"github.com/jsamuelsen11/batch-service/internal/domain/month"
	"github.com/jsamuelsen11/batch-service/internal/ports"
)

func openTemp(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "hierarchy.db"), opts...)
	require.NoError(t, err)
	return s
}

func TestStore_Contract(t *testing.T) {
	t.Parallel()
	storetest.Run(t, func(t *testing.T) ports.HierarchyStore { return openTemp(t) })
}

func TestOpen_EmptyPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("Open(\"\") = nil error, want error")
	}
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "hierarchy.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	b, err := s.AddBatch(ctx, batch.Batch{Name: "Spring"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Migrations are idempotent on an existing schema.
	s, err = Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	got, err := s.GetBatch(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spring", got.Name)
}

func TestStore_CreatedAtRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fixed := time.Date(2024, 3, 1, 9, 30, 15, 123456789, time.UTC)
	s := openTemp(t, WithClock(func() time.Time { return fixed }))
	t.Cleanup(func() { _ = s.Close() })

	b, err := s.AddBatch(ctx, batch.Batch{Name: "Spring"})
	require.NoError(t, err)

	got, err := s.GetBatch(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(fixed), "CreatedAt = %v, want %v", got.CreatedAt, fixed)
}

func TestStore_UniqueIndexesMapToConflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTemp(t)
	t.Cleanup(func() { _ = s.Close() })

	f := storetest.Seed(t, s)

	tests := []struct {
		name string
		do   func() error
	}{
		{
			name: "batch name case-insensitive",
			do: func() error {
				_, err := s.AddBatch(ctx, batch.Batch{Name: "SPRING"})
				return err
			},
		},
		{
			name: "course name within batch",
			do: func() error {
				_, err := s.AddCourse(ctx, course.Course{Name: "math", BatchID: f.Spring.ID})
				return err
			},
		},
		{
			name: "month number within course",
			do: func() error {
				_, err := s.AddMonth(ctx, month.Month{Name: "Other", Number: 1, CourseID: f.Math.ID, Payment: f.Jan.Payment})
				return err
			},
		},
		{
			name: "rename onto sibling",
			do: func() error {
				name := "Autumn"
				return s.UpdateBatch(ctx, f.Spring.ID, batch.Patch{Name: &name})
			},
		},
	}

	for _, tt := range tests {
		err := tt.do()
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("%s: err = %v, want ErrConflict", tt.name, err)
		}
	}
}

func TestStore_HealthCheckAfterClose(t *testing.T) {
	t.Parallel()

	s := openTemp(t)
	require.NoError(t, s.HealthCheck(context.Background()))
	require.NoError(t, s.Close())

	assert.Error(t, s.HealthCheck(context.Background()))
	assert.Equal(t, "sqlite", s.Name())
}
