package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/batch-service/internal/domain/course"
	"github.com/jsamuelsen11/batch-service/internal/ports"
)

const selectCourse = `SELECT id, name, batch_id, created_at FROM courses`

// AddCourse implements ports.CourseStore.
func (s *Store) AddCourse(ctx context.Context, c course.Course) (*course.Course, error) {
	c.ID = s.newID()
	c.CreatedAt = s.now()

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "batches", c.BatchID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("batch", c.BatchID)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO courses (id, name, batch_id, created_at) VALUES (?, ?, ?, ?)`,
			c.ID, c.Name, c.BatchID, formatTime(c.CreatedAt),
		)
		if err != nil {
			return mapWriteErr("course", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCourse implements ports.CourseStore.
func (s *Store) GetCourse(ctx context.Context, id string) (*course.Course, error) {
	c, err := scanCourse(s.db.QueryRowContext(ctx, selectCourse+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("course", id)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCourses implements ports.CourseStore.
func (s *Store) ListCourses(ctx context.Context) ([]course.Course, error) {
	return s.queryCourses(ctx, selectCourse+` ORDER BY rowid`)
}

// ListCoursesByBatch implements ports.CourseStore.
func (s *Store) ListCoursesByBatch(ctx context.Context, batchID string) ([]course.Course, error) {
	return s.queryCourses(ctx, selectCourse+` WHERE batch_id = ? ORDER BY rowid`, batchID)
}

func (s *Store) queryCourses(ctx context.Context, query string, args ...any) ([]course.Course, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select courses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []course.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}
	return out, nil
}

// UpdateCourse implements ports.CourseStore.
func (s *Store) UpdateCourse(ctx context.Context, id string, patch course.Patch) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE courses SET name = COALESCE(?, name) WHERE id = ?`,
		nullString(patch.Name), id,
	)
	if err != nil {
		return mapWriteErr("course", err)
	}
	return rowsAffected(res, "course", id)
}

// DeleteCourse implements ports.CourseStore.
func (s *Store) DeleteCourse(ctx context.Context, id string) (ports.Cascade, error) {
	var removed ports.Cascade
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "courses", id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("course", id)
		}
		if removed.Months, err = count(ctx, tx,
			`SELECT COUNT(*) FROM months WHERE course_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete course: %w", err)
		}
		return nil
	})
	if err != nil {
		return ports.Cascade{}, err
	}
	return removed, nil
}

func scanCourse(sc scanner) (course.Course, error) {
	var (
		c       course.Course
		created string
	)
	if err := sc.Scan(&c.ID, &c.Name, &c.BatchID, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, err
		}
		return c, fmt.Errorf("scan course: %w", err)
	}
	t, err := parseTime(created)
	if err != nil {
		return c, err
	}
	c.CreatedAt = t
	return c, nil
}
