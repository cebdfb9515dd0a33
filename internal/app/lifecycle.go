// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/jsamuelsen11/batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/batch-service/internal/domain/course"
	"github.com/jsamuelsen11/batch-service/internal/domain/gate"
	"github.com/jsamuelsen11/batch-service/internal/domain/month"
	"github.com/jsamuelsen11/batch-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/batch-service/internal/ports"
)

// Compile-time check that LifecycleService implements ports.LifecycleService.
var _ ports.LifecycleService = (*LifecycleService)(nil)

// Entity and operation labels used in notifications, logs and metrics.
const (
	entityBatch  = "batch"
	entityCourse = "course"
	entityMonth  = "month"

	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"

	resultSuccess  = "success"
	resultError    = "error"
	resultRejected = "rejected"
	resultDeclined = "declined"
)

// Confirmation prompts shown before a delete.
const (
	PromptDeleteBatch  = "Are you sure you want to delete this batch? This will also delete all related courses and months."
	PromptDeleteCourse = "Are you sure you want to delete this course? This will also delete all related months."
	PromptDeleteMonth  = "Are you sure you want to delete this month?"
)

// Collaborators groups the user-facing ports the service drives. Any nil
// field falls back to a default: names are only trimmed, notifications are
// dropped, and every confirmation is declined.
type Collaborators struct {
	Sanitizer ports.Sanitizer
	Notifier  ports.Notifier
	Confirmer ports.Confirmer
}

// LifecycleService implements ports.LifecycleService. It normalizes input,
// runs the admission checks in the gate package, applies accepted changes to
// the store and republishes the hierarchy view. All mutations are serialized
// so each one validates against the state it then modifies.
type LifecycleService struct {
	store     ports.HierarchyStore
	refresher ports.Refresher
	sanitizer ports.Sanitizer
	notifier  ports.Notifier
	confirmer ports.Confirmer
	metrics   *telemetry.Metrics
	logger    *slog.Logger

	mu sync.Mutex
}

// NewLifecycleService creates a LifecycleService. The refresher is invoked
// after every successful mutation. If metrics is nil, metric recording is
// skipped.
func NewLifecycleService(
	store ports.HierarchyStore,
	refresher ports.Refresher,
	collab Collaborators,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *LifecycleService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if collab.Sanitizer == nil {
		collab.Sanitizer = passthrough{}
	}
	if collab.Notifier == nil {
		collab.Notifier = discardNotifier{}
	}
	if collab.Confirmer == nil {
		collab.Confirmer = declineAll{}
	}
	return &LifecycleService{
		store:     store,
		refresher: refresher,
		sanitizer: collab.Sanitizer,
		notifier:  collab.Notifier,
		confirmer: collab.Confirmer,
		metrics:   metrics,
		logger:    logger,
	}
}

// --- batches ---

// CreateBatch validates name against every existing batch and stores a new
// batch.
func (s *LifecycleService) CreateBatch(ctx context.Context, name string) (*batch.Batch, error) {
	name = s.normalize(name)
	s.logger.InfoContext(ctx, "creating batch", slog.String("name", name))

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.store.ListBatches(ctx)
	if err != nil {
		return nil, s.fail(ctx, entityBatch, opCreate, "CreateBatch", "", err)
	}
	if err := s.admit(ctx, entityBatch, opCreate, gate.CanCreateBatch(existing, name)); err != nil {
		return nil, err
	}

	created, err := s.store.AddBatch(ctx, batch.Batch{Name: name})
	if err != nil {
		return nil, s.fail(ctx, entityBatch, opCreate, "CreateBatch", "", err)
	}

	s.succeed(ctx, entityBatch, opCreate, "Batch created successfully")
	return created, nil
}

// GetBatch returns a single batch by ID.
func (s *LifecycleService) GetBatch(ctx context.Context, id string) (*batch.Batch, error) {
	s.logger.InfoContext(ctx, "fetching batch", slog.String("id", id))

	b, err := s.store.GetBatch(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetBatch", id, err)
		return nil, err
	}
	return b, nil
}

// UpdateBatch renames a batch. An unchanged name is reported with
// changed=false and causes no write, notification or refresh.
func (s *LifecycleService) UpdateBatch(ctx context.Context, id string, patch batch.Patch) (*batch.Batch, bool, error) {
	s.logger.InfoContext(ctx, "updating batch", slog.String("id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.GetBatch(ctx, id)
	if err != nil {
		return nil, false, s.fail(ctx, entityBatch, opUpdate, "UpdateBatch", id, err)
	}
	if patch.IsEmpty() {
		return current, false, nil
	}

	name := s.normalize(*patch.Name)
	existing, err := s.store.ListBatches(ctx)
	if err != nil {
		return nil, false, s.fail(ctx, entityBatch, opUpdate, "UpdateBatch", id, err)
	}
	verdict := gate.CanRenameBatch(existing, *current, name)
	if err := s.admit(ctx, entityBatch, opUpdate, verdict); err != nil {
		return nil, false, err
	}
	if verdict.NoOp {
		return current, false, nil
	}

	write := batch.Patch{Name: &name}
	if err := s.store.UpdateBatch(ctx, id, write); err != nil {
		return nil, false, s.fail(ctx, entityBatch, opUpdate, "UpdateBatch", id, err)
	}

	updated := write.Apply(*current)
	s.succeed(ctx, entityBatch, opUpdate, "Batch updated successfully")
	return &updated, true, nil
}

// DeleteBatch asks for confirmation, then removes the batch together with
// all of its courses and their months.
func (s *LifecycleService) DeleteBatch(ctx context.Context, id string) (ports.DeleteOutcome, error) {
	return s.remove(ctx, entityBatch, "DeleteBatch", id, PromptDeleteBatch, "Batch deleted successfully",
		func(ctx context.Context) (ports.Cascade, error) {
			return s.store.DeleteBatch(ctx, id)
		})
}

// --- courses ---

// CreateCourse validates name within batchID and stores a new course. The
// batch must exist.
func (s *LifecycleService) CreateCourse(ctx context.Context, name, batchID string) (*course.Course, error) {
	name = s.normalize(name)
	batchID = strings.TrimSpace(batchID)
	s.logger.InfoContext(ctx, "creating course",
		slog.String("name", name),
		slog.String("batch_id", batchID),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	siblings, err := s.store.ListCoursesByBatch(ctx, batchID)
	if err != nil {
		return nil, s.fail(ctx, entityCourse, opCreate, "CreateCourse", "", err)
	}
	if err := s.admit(ctx, entityCourse, opCreate, gate.CanCreateCourse(siblings, name, batchID)); err != nil {
		return nil, err
	}
	if _, err := s.store.GetBatch(ctx, batchID); err != nil {
		return nil, s.fail(ctx, entityCourse, opCreate, "CreateCourse", "", err)
	}

	created, err := s.store.AddCourse(ctx, course.Course{Name: name, BatchID: batchID})
	if err != nil {
		return nil, s.fail(ctx, entityCourse, opCreate, "CreateCourse", "", err)
	}

	s.succeed(ctx, entityCourse, opCreate, "Course created successfully")
	return created, nil
}

// GetCourse returns a single course by ID.
func (s *LifecycleService) GetCourse(ctx context.Context, id string) (*course.Course, error) {
	s.logger.InfoContext(ctx, "fetching course", slog.String("id", id))

	c, err := s.store.GetCourse(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetCourse", id, err)
		return nil, err
	}
	return c, nil
}

// UpdateCourse renames a course within its batch.
func (s *LifecycleService) UpdateCourse(ctx context.Context, id string, patch course.Patch) (*course.Course, bool, error) {
	s.logger.InfoContext(ctx, "updating course", slog.String("id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.GetCourse(ctx, id)
	if err != nil {
		return nil, false, s.fail(ctx, entityCourse, opUpdate, "UpdateCourse", id, err)
	}
	if patch.IsEmpty() {
		return current, false, nil
	}

	name := s.normalize(*patch.Name)
	siblings, err := s.store.ListCoursesByBatch(ctx, current.BatchID)
	if err != nil {
		return nil, false, s.fail(ctx, entityCourse, opUpdate, "UpdateCourse", id, err)
	}
	verdict := gate.CanRenameCourse(siblings, *current, name)
	if err := s.admit(ctx, entityCourse, opUpdate, verdict); err != nil {
		return nil, false, err
	}
	if verdict.NoOp {
		return current, false, nil
	}

	write := course.Patch{Name: &name}
	if err := s.store.UpdateCourse(ctx, id, write); err != nil {
		return nil, false, s.fail(ctx, entityCourse, opUpdate, "UpdateCourse", id, err)
	}

	updated := write.Apply(*current)
	s.succeed(ctx, entityCourse, opUpdate, "Course updated successfully")
	return &updated, true, nil
}

// DeleteCourse asks for confirmation, then removes the course and its
// months.
func (s *LifecycleService) DeleteCourse(ctx context.Context, id string) (ports.DeleteOutcome, error) {
	return s.remove(ctx, entityCourse, "DeleteCourse", id, PromptDeleteCourse, "Course deleted successfully",
		func(ctx context.Context) (ports.Cascade, error) {
			return s.store.DeleteCourse(ctx, id)
		})
}

// --- months ---

// CreateMonth validates the draft within its course and stores a new month.
// The course must exist.
func (s *LifecycleService) CreateMonth(ctx context.Context, d month.Draft) (*month.Month, error) {
	d.Name = s.normalize(d.Name)
	d.CourseID = strings.TrimSpace(d.CourseID)
	s.logger.InfoContext(ctx, "creating month",
		slog.String("name", d.Name),
		slog.Int("month_number", d.Number),
		slog.String("course_id", d.CourseID),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	siblings, err := s.store.ListMonthsByCourse(ctx, d.CourseID)
	if err != nil {
		return nil, s.fail(ctx, entityMonth, opCreate, "CreateMonth", "", err)
	}
	if err := s.admit(ctx, entityMonth, opCreate, gate.CanCreateMonth(siblings, d)); err != nil {
		return nil, err
	}
	if _, err := s.store.GetCourse(ctx, d.CourseID); err != nil {
		return nil, s.fail(ctx, entityMonth, opCreate, "CreateMonth", "", err)
	}

	created, err := s.store.AddMonth(ctx, month.Month{
		Name:     d.Name,
		Number:   d.Number,
		CourseID: d.CourseID,
		Payment:  d.Payment,
	})
	if err != nil {
		return nil, s.fail(ctx, entityMonth, opCreate, "CreateMonth", "", err)
	}

	s.succeed(ctx, entityMonth, opCreate, "Month created successfully")
	return created, nil
}

// GetMonth returns a single month by ID.
func (s *LifecycleService) GetMonth(ctx context.Context, id string) (*month.Month, error) {
	s.logger.InfoContext(ctx, "fetching month", slog.String("id", id))

	m, err := s.store.GetMonth(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetMonth", id, err)
		return nil, err
	}
	return m, nil
}

// UpdateMonth changes a month's name, payment or both. Fields absent from
// the patch keep their current values. Number and course are fixed.
func (s *LifecycleService) UpdateMonth(ctx context.Context, id string, patch month.Patch) (*month.Month, bool, error) {
	s.logger.InfoContext(ctx, "updating month", slog.String("id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.GetMonth(ctx, id)
	if err != nil {
		return nil, false, s.fail(ctx, entityMonth, opUpdate, "UpdateMonth", id, err)
	}
	if patch.IsEmpty() {
		return current, false, nil
	}

	name, payment := current.Name, current.Payment
	if patch.Name != nil {
		name = s.normalize(*patch.Name)
	}
	if patch.Payment != nil {
		payment = *patch.Payment
	}

	siblings, err := s.store.ListMonthsByCourse(ctx, current.CourseID)
	if err != nil {
		return nil, false, s.fail(ctx, entityMonth, opUpdate, "UpdateMonth", id, err)
	}
	verdict := gate.CanRenameOrRepriceMonth(siblings, *current, name, payment)
	if err := s.admit(ctx, entityMonth, opUpdate, verdict); err != nil {
		return nil, false, err
	}
	if verdict.NoOp {
		return current, false, nil
	}

	var write month.Patch
	if name != current.Name {
		write.Name = &name
	}
	if !payment.Equal(current.Payment) {
		write.Payment = &payment
	}
	if err := s.store.UpdateMonth(ctx, id, write); err != nil {
		return nil, false, s.fail(ctx, entityMonth, opUpdate, "UpdateMonth", id, err)
	}

	updated := write.Apply(*current)
	s.succeed(ctx, entityMonth, opUpdate, "Month updated successfully")
	return &updated, true, nil
}

// DeleteMonth asks for confirmation, then removes the month.
func (s *LifecycleService) DeleteMonth(ctx context.Context, id string) (ports.DeleteOutcome, error) {
	return s.remove(ctx, entityMonth, "DeleteMonth", id, PromptDeleteMonth, "Month deleted successfully",
		func(ctx context.Context) (ports.Cascade, error) {
			return ports.Cascade{}, s.store.DeleteMonth(ctx, id)
		})
}

// --- shared steps ---

// remove runs the confirm, delete, notify and refresh sequence. The
// confirmation is asked before the mutation lock is taken.
func (s *LifecycleService) remove(
	ctx context.Context,
	entity, operation, id, prompt, successMsg string,
	del func(context.Context) (ports.Cascade, error),
) (ports.DeleteOutcome, error) {
	s.logger.InfoContext(ctx, "deleting "+entity, slog.String("id", id))

	if !s.confirmer.Confirm(ctx, prompt) {
		s.logger.InfoContext(ctx, "delete declined",
			slog.String("entity", entity),
			slog.String("id", id),
		)
		s.metrics.RecordMutation(ctx, entity, opDelete, resultDeclined)
		return ports.DeleteOutcome{Declined: true, Prompt: prompt}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := del(ctx)
	if err != nil {
		return ports.DeleteOutcome{}, s.fail(ctx, entity, opDelete, operation, id, err)
	}

	s.succeed(ctx, entity, opDelete, successMsg)
	return ports.DeleteOutcome{Cascade: removed}, nil
}

func (s *LifecycleService) normalize(v string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(v))
}

// admit turns a rejecting verdict into an error, notifying the user and
// counting the rejection. It returns nil for admitted verdicts.
func (s *LifecycleService) admit(ctx context.Context, entity, operation string, v gate.Verdict) error {
	if v.Admitted() {
		return nil
	}
	s.logger.InfoContext(ctx, entity+" "+operation+" rejected",
		slog.String("reason", v.Reason.String()),
		slog.String("field", v.Field),
	)
	s.notifier.Notify(ctx, ports.Notification{
		Level:     ports.NotifyError,
		Message:   v.Message,
		Entity:    entity,
		Operation: operation,
	})
	s.metrics.RecordRejection(ctx, entity, v.Reason.String())
	s.metrics.RecordMutation(ctx, entity, operation, resultRejected)
	return v.Err()
}

// fail logs, notifies and counts a store failure, then returns err
// unchanged.
func (s *LifecycleService) fail(ctx context.Context, entity, operation, method, id string, err error) error {
	s.logFailure(ctx, method, id, err)
	s.notifier.Notify(ctx, ports.Notification{
		Level:     ports.NotifyError,
		Message:   err.Error(),
		Entity:    entity,
		Operation: operation,
	})
	s.metrics.RecordMutation(ctx, entity, operation, resultError)
	return err
}

func (s *LifecycleService) logFailure(ctx context.Context, method, id string, err error) {
	attrs := []any{slog.String("operation", method)}
	if id != "" {
		attrs = append(attrs, slog.String("id", id))
	}
	attrs = append(attrs, slog.Any("error", err))
	s.logger.ErrorContext(ctx, "hierarchy operation failed", attrs...)
}

// succeed notifies, counts and refreshes after a completed mutation. A
// failed refresh is logged but does not fail the mutation, which has
// already been committed.
func (s *LifecycleService) succeed(ctx context.Context, entity, operation, msg string) {
	s.notifier.Notify(ctx, ports.Notification{
		Level:     ports.NotifySuccess,
		Message:   msg,
		Entity:    entity,
		Operation: operation,
	})
	s.metrics.RecordMutation(ctx, entity, operation, resultSuccess)

	if s.refresher == nil {
		return
	}
	if _, err := s.refresher.Refresh(ctx); err != nil {
		s.logger.WarnContext(ctx, "hierarchy refresh after mutation failed",
			slog.String("entity", entity),
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}
}

type passthrough struct{}

func (passthrough) Sanitize(s string) string { return s }

type discardNotifier struct{}

func (discardNotifier) Notify(context.Context, ports.Notification) {}

type declineAll struct{}

func (declineAll) Confirm(context.Context, string) bool { return false }
