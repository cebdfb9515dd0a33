// Package storetest provides a behavioural test suite shared by every
// ports.HierarchyStore implementation.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/batch-service/internal/domain"
	"github.com/jsamuelsen11/batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/batch-service/internal/domain/course"
	"github.com/jsamuelsen11/batch-service/internal/domain/month"
	"github.com/jsamuelsen11/batch-service/internal/ports"
)

// Factory returns a fresh, empty store. The suite closes it when the test
// ends.
type Factory func(t *testing.T) ports.HierarchyStore

// Run executes the suite against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s ports.HierarchyStore)
	}{
		{"AddAndGet", testAddAndGet},
		{"ListsInCreationOrder", testListsInCreationOrder},
		{"ListByParent", testListByParent},
		{"Update", testUpdate},
		{"NotFound", testNotFound},
		{"AddRequiresParent", testAddRequiresParent},
		{"DeleteBatchCascades", testDeleteBatchCascades},
		{"DeleteCourseCascades", testDeleteCourseCascades},
		{"DeleteMonth", testDeleteMonth},
		{"ReadsAreCopies", testReadsAreCopies},
		{"Health", testHealth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newStore(t)
			t.Cleanup(func() { _ = s.Close() })
			tt.fn(t, s)
		})
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Fixture is a small populated hierarchy.
type Fixture struct {
	Spring, Autumn   batch.Batch
	Math, Art, Music course.Course
	Jan, Feb, Mar    month.Month
}

// Seed populates s with two batches, three courses and three months:
// Spring{Math{Jan, Feb}, Art{Mar}} and Autumn{Music}.
func Seed(t *testing.T, s ports.HierarchyStore) Fixture {
	t.Helper()
	ctx := context.Background()

	var f Fixture
	f.Spring = *must(t)(s.AddBatch(ctx, batch.Batch{Name: "Spring"}))
	f.Autumn = *must(t)(s.AddBatch(ctx, batch.Batch{Name: "Autumn"}))
	f.Math = *mustCourse(t)(s.AddCourse(ctx, course.Course{Name: "Math", BatchID: f.Spring.ID}))
	f.Art = *mustCourse(t)(s.AddCourse(ctx, course.Course{Name: "Art", BatchID: f.Spring.ID}))
	f.Music = *mustCourse(t)(s.AddCourse(ctx, course.Course{Name: "Music", BatchID: f.Autumn.ID}))
	f.Jan = *mustMonth(t)(s.AddMonth(ctx, month.Month{Name: "January", Number: 1, CourseID: f.Math.ID, Payment: dec("100")}))
	f.Feb = *mustMonth(t)(s.AddMonth(ctx, month.Month{Name: "February", Number: 2, CourseID: f.Math.ID, Payment: dec("120.50")}))
	f.Mar = *mustMonth(t)(s.AddMonth(ctx, month.Month{Name: "March", Number: 3, CourseID: f.Art.ID, Payment: dec("75")}))
	return f
}

func must(t *testing.T) func(*batch.Batch, error) *batch.Batch {
	return func(b *batch.Batch, err error) *batch.Batch {
		t.Helper()
		require.NoError(t, err)
		return b
	}
}

func mustCourse(t *testing.T) func(*course.Course, error) *course.Course {
	return func(c *course.Course, err error) *course.Course {
		t.Helper()
		require.NoError(t, err)
		return c
	}
}

func mustMonth(t *testing.T) func(*month.Month, error) *month.Month {
	return func(m *month.Month, err error) *month.Month {
		t.Helper()
		require.NoError(t, err)
		return m
	}
}

func testAddAndGet(t *testing.T, s ports.HierarchyStore) {
	ctx := context.Background()
	f := Seed(t, s)

	assert.NotEmpty(t, f.Spring.ID)
	assert.False(t, f.Spring.CreatedAt.IsZero(), "CreatedAt should be assigned")
	assert.NotEqual(t, f.Spring.ID, f.Autumn.ID)

	got, err := s.GetBatch(ctx, f.Spring.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spring", got.Name)
	assert.True(t, got.CreatedAt.Equal(f.Spring.CreatedAt), "CreatedAt = %v, want %v", got.CreatedAt, f.Spring.CreatedAt)

	c, err := s.GetCourse(ctx, f.Math.ID)
	require.NoError(t, err)
	assert.Equal(t, "Math", c.Name)
	assert.Equal(t, f.Spring.ID, c.BatchID)

	m, err := s.GetMonth(ctx, f.Feb.ID)
	require.NoError(t, err)
	assert.Equal(t, "February", m.Name)
	assert.Equal(t, 2, m.Number)
	assert.Equal(t, f.Math.ID, m.CourseID)
	assert.True(t, m.Payment.Equal(dec("120.5")), "Payment = %s, want 120.5", m.Payment)
}

func testListsInCreationOrder(t *testing.T, s ports.HierarchyStore) {
	ctx := context.Background()
	f := Seed(t, s)

	bs, err := s.ListBatches(ctx)
	require.NoError(t, err)
	require.Len(t, bs, 2)
	assert.Equal(t, []string{f.Spring.ID, f.Autumn.ID}, []string{bs[0].ID, bs[1].ID})

	cs, err := s.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, cs, 3)
	assert.Equal(t, []string{"Math", "Art", "Music"}, []string{cs[0].Name, cs[1].Name, cs[2].Name})

	ms, err := s.ListMonths(ctx)
	require.NoError(t, err)
	require.Len(t, ms, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{ms[0].Number, ms[1].Number, ms[2].Number})
}

func testListByParent(t *testing.T, s ports.HierarchyStore) {
	ctx := context.Background()
	f := Seed(t, s)

	cs, err := s.ListCoursesByBatch(ctx, f.Spring.ID)
	require.NoError(t, err)
	assert.Len(t, cs, 2)

	ms, err := s.ListMonthsByCourse(ctx, f.Math.ID)
	require.NoError(t, err)
	assert.Len(t, ms, 2)

	empty, err := s.ListMonthsByCourse(ctx, f.Music.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	none, err := s.ListCoursesByBatch(ctx, "no-such-batch")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testUpdate(t *testing.T, s ports.HierarchyStore) {
	ctx := context.Background()
	f := Seed(t, s)

	name := "Spring 2025"
	require.NoError(t, s.UpdateBatch(ctx, f.Spring.ID, batch.Patch{Name: &name}))
	b, err := s.GetBatch(ctx, f.Spring.ID)
	require.NoError(t, err)
	assert.Equal(t, name, b.Name)
	assert.True(t, b.CreatedAt.Equal(f.Spring.CreatedAt), "CreatedAt changed on update")

	cname := "Algebra"
	require.NoError(t, s.UpdateCourse(ctx, f.Math.ID, course.Patch{Name: &cname}))
	c, err := s.GetCourse(ctx, f.Math.ID)
	require.NoError(t, err)
	assert.Equal(t, cname, c.Name)
	assert.Equal(t, f.Spring.ID, c.BatchID)

	pay := dec("130")
	require.NoError(t, s.UpdateMonth(ctx, f.Jan.ID, month.Patch{Payment: &pay}))
	m, err := s.GetMonth(ctx, f.Jan.ID)
	require.NoError(t, err)
	assert.Equal(t, "January", m.Name)
	assert.Equal(t, 1, m.Number)
	assert.True(t, m.Payment.Equal(pay), "Payment = %s, want %s", m.Payment, pay)
}

func testNotFound(t *testing.T, s ports.HierarchyStore) {
	ctx := context.Background()
	name := "x"

	_, err := s.GetBatch(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.GetCourse(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.GetMonth(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, s.UpdateBatch(ctx, "missing", batch.Patch{Name: &name}), domain.ErrNotFound)
	assert.ErrorIs(t, s.UpdateCourse(ctx, "missing", course.Patch{Name: &name}), domain.ErrNotFound)
	assert.ErrorIs(t, s.UpdateMonth(ctx, "missing", month.Patch{Name: &name}), domain.ErrNotFound)

	_, err = s.DeleteBatch(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.DeleteCourse(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, s.DeleteMonth(ctx, "missing"), domain.ErrNotFound)
}

func testAddRequiresParent(t *testing.T, s ports.HierarchyStore) {
	ctx := context.Background()

	_, err := s.AddCourse(ctx, course.Course{Name: "Math", BatchID: "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.AddMonth(ctx, month.Month{Name: "January", Number: 1, CourseID: "missing", Payment: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cs, err := s.ListCourses(ctx)
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func testDeleteBatchCascades(t *testing.T, s ports.HierarchyStore) {
	ctx := context.Background()
	f := Seed(t, s)

	removed, err := s.DeleteBatch(ctx, f.Spring.ID)
	require.NoError(t, err)
	assert.Equal(t, ports.Cascade{Courses: 2, Months: 3}, removed)

	_, err = s.GetBatch(ctx, f.Spring.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	for _, id := range []string{f.Math.ID, f.Art.ID} {
		_, err = s.GetCourse(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotFound, "course %s should be gone", id)
	}
	ms, err := s.ListMonths(ctx)
	require.NoError(t, err)
	assert.Empty(t, ms)

	// The sibling subtree is untouched.
	cs, err := s.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, f.Music.ID, cs[0].ID)
}

func testDeleteCourseCascades(t *testing.T, s ports.HierarchyStore) {
	ctx := context.Background()
	f := Seed(t, s)

	removed, err := s.DeleteCourse(ctx, f.Math.ID)
	require.NoError(t, err)
	assert.Equal(t, ports.Cascade{Months: 2}, removed)

	ms, err := s.ListMonths(ctx)
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, f.Mar.ID, ms[0].ID)

	_, err = s.GetBatch(ctx, f.Spring.ID)
	assert.NoError(t, err)
}

func testDeleteMonth(t *testing.T, s ports.HierarchyStore) {
	ctx := context.Background()
	f := Seed(t, s)

	require.NoError(t, s.DeleteMonth(ctx, f.Jan.ID))
	_, err := s.GetMonth(ctx, f.Jan.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = s.DeleteMonth(ctx, f.Jan.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "second delete = %v, want ErrNotFound", err)
}

func testReadsAreCopies(t *testing.T, s ports.HierarchyStore) {
	ctx := context.Background()
	f := Seed(t, s)

	bs, err := s.ListBatches(ctx)
	require.NoError(t, err)
	bs[0].Name = "mutated"

	got, err := s.GetBatch(ctx, f.Spring.ID)
	require.NoError(t, err)
	got.Name = "mutated too"

	again, err := s.GetBatch(ctx, f.Spring.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spring", again.Name)
}

func testHealth(t *testing.T, s ports.HierarchyStore) {
	assert.NotEmpty(t, s.Name())
	assert.NoError(t, s.HealthCheck(context.Background()))
}
