// Package memory provides an in-memory implementation of the hierarchy store
// used for tests and ephemeral environments.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/batch-service/internal/domain"
	"github.com/jsamuelsen11/batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/batch-service/internal/domain/course"
	"github.com/jsamuelsen11/batch-service/internal/domain/month"
	"github.com/jsamuelsen11/batch-service/internal/ports"
)

// Compile-time check that Store implements ports.HierarchyStore.
var _ ports.HierarchyStore = (*Store)(nil)

// row pairs a record with its insertion sequence so lists come back in
// creation order.
type row[T any] struct {
	seq uint64
	v   T
}

// Store keeps every record in maps guarded by a single RWMutex. Reads return
// copies; a cascading delete runs under one write lock so no reader observes
// a partially removed subtree.
type Store struct {
	mu      sync.RWMutex
	seq     uint64
	batches map[string]row[batch.Batch]
	courses map[string]row[course.Course]
	months  map[string]row[month.Month]

	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the ID source. Generated IDs must be unique.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		batches: make(map[string]row[batch.Batch]),
		courses: make(map[string]row[course.Course]),
		months:  make(map[string]row[month.Month]),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "memory-store" }

// HealthCheck implements ports.HealthChecker. The in-memory store is always
// ready.
func (s *Store) HealthCheck(_ context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() error { return nil }

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

func sorted[T any](rows []row[T]) []T {
	slices.SortFunc(rows, func(a, b row[T]) int { return cmp.Compare(a.seq, b.seq) })
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = r.v
	}
	return out
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, domain.ErrNotFound)
}

// --- batches ---

// AddBatch implements ports.BatchStore.
func (s *Store) AddBatch(_ context.Context, b batch.Batch) (*batch.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = s.newID()
	b.CreatedAt = s.now()
	s.batches[b.ID] = row[batch.Batch]{seq: s.nextSeq(), v: b}
	return &b, nil
}

// GetBatch implements ports.BatchStore.
func (s *Store) GetBatch(_ context.Context, id string) (*batch.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.batches[id]
	if !ok {
		return nil, notFound("batch", id)
	}
	b := r.v
	return &b, nil
}

// ListBatches implements ports.BatchStore.
func (s *Store) ListBatches(_ context.Context) ([]batch.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]row[batch.Batch], 0, len(s.batches))
	for _, r := range s.batches {
		rows = append(rows, r)
	}
	return sorted(rows), nil
}

// UpdateBatch implements ports.BatchStore.
func (s *Store) UpdateBatch(_ context.Context, id string, patch batch.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.batches[id]
	if !ok {
		return notFound("batch", id)
	}
	r.v = patch.Apply(r.v)
	s.batches[id] = r
	return nil
}

// DeleteBatch implements ports.BatchStore.
func (s *Store) DeleteBatch(_ context.Context, id string) (ports.Cascade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.batches[id]; !ok {
		return ports.Cascade{}, notFound("batch", id)
	}

	var removed ports.Cascade
	for cid, c := range s.courses {
		if c.v.BatchID != id {
			continue
		}
		removed.Months += s.deleteMonthsOfLocked(cid)
		delete(s.courses, cid)
		removed.Courses++
	}
	delete(s.batches, id)
	return removed, nil
}

// --- courses ---

// AddCourse implements ports.CourseStore.
func (s *Store) AddCourse(_ context.Context, c course.Course) (*course.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.batches[c.BatchID]; !ok {
		return nil, notFound("batch", c.BatchID)
	}
	c.ID = s.newID()
	c.CreatedAt = s.now()
	s.courses[c.ID] = row[course.Course]{seq: s.nextSeq(), v: c}
	return &c, nil
}

// GetCourse implements ports.CourseStore.
func (s *Store) GetCourse(_ context.Context, id string) (*course.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.courses[id]
	if !ok {
		return nil, notFound("course", id)
	}
	c := r.v
	return &c, nil
}

// ListCourses implements ports.CourseStore.
func (s *Store) ListCourses(_ context.Context) ([]course.Course, error) {
	return s.listCourses(func(course.Course) bool { return true }), nil
}

// ListCoursesByBatch implements ports.CourseStore.
func (s *Store) ListCoursesByBatch(_ context.Context, batchID string) ([]course.Course, error) {
	return s.listCourses(func(c course.Course) bool { return c.BatchID == batchID }), nil
}

func (s *Store) listCourses(keep func(course.Course) bool) []course.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]row[course.Course], 0, len(s.courses))
	for _, r := range s.courses {
		if keep(r.v) {
			rows = append(rows, r)
		}
	}
	return sorted(rows)
}

// UpdateCourse implements ports.CourseStore.
func (s *Store) UpdateCourse(_ context.Context, id string, patch course.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.courses[id]
	if !ok {
		return notFound("course", id)
	}
	r.v = patch.Apply(r.v)
	s.courses[id] = r
	return nil
}

// DeleteCourse implements ports.CourseStore.
func (s *Store) DeleteCourse(_ context.Context, id string) (ports.Cascade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return ports.Cascade{}, notFound("course", id)
	}
	removed := ports.Cascade{Months: s.deleteMonthsOfLocked(id)}
	delete(s.courses, id)
	return removed, nil
}

// deleteMonthsOfLocked removes every month of courseID and returns how many
// were removed. The caller must hold the write lock.
func (s *Store) deleteMonthsOfLocked(courseID string) int {
	n := 0
	for mid, m := range s.months {
		if m.v.CourseID == courseID {
			delete(s.months, mid)
			n++
		}
	}
	return n
}

// --- months ---

// AddMonth implements ports.MonthStore.
func (s *Store) AddMonth(_ context.Context, m month.Month) (*month.Month, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[m.CourseID]; !ok {
		return nil, notFound("course", m.CourseID)
	}
	m.ID = s.newID()
	m.CreatedAt = s.now()
	s.months[m.ID] = row[month.Month]{seq: s.nextSeq(), v: m}
	return &m, nil
}

// GetMonth implements ports.MonthStore.
func (s *Store) GetMonth(_ context.Context, id string) (*month.Month, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.months[id]
	if !ok {
		return nil, notFound("month", id)
	}
	m := r.v
	return &m, nil
}

// ListMonths implements ports.MonthStore.
func (s *Store) ListMonths(_ context.Context) ([]month.Month, error) {
	return s.listMonths(func(month.Month) bool { return true }), nil
}

// ListMonthsByCourse implements ports.MonthStore.
func (s *Store) ListMonthsByCourse(_ context.Context, courseID string) ([]month.Month, error) {
	return s.listMonths(func(m month.Month) bool { return m.CourseID == courseID }), nil
}

func (s *Store) listMonths(keep func(month.Month) bool) []month.Month {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]row[month.Month], 0, len(s.months))
	for _, r := range s.months {
		if keep(r.v) {
			rows = append(rows, r)
		}
	}
	return sorted(rows)
}

// UpdateMonth implements ports.MonthStore.
func (s *Store) UpdateMonth(_ context.Context, id string, patch month.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.months[id]
	if !ok {
		return notFound("month", id)
	}
	r.v = patch.Apply(r.v)
	s.months[id] = r
	return nil
}

// DeleteMonth implements ports.MonthStore.
func (s *Store) DeleteMonth(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.months[id]; !ok {
		return notFound("month", id)
	}
	delete(s.months, id)
	return nil
}
