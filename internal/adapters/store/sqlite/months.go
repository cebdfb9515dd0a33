package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/batch-service/internal/domain/month"
)

const selectMonth = `SELECT id, name, month_number, course_id, payment, created_at FROM months`

// AddMonth implements ports.MonthStore.
func (s *Store) AddMonth(ctx context.Context, m month.Month) (*month.Month, error) {
	m.ID = s.newID()
	m.CreatedAt = s.now()

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "courses", m.CourseID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("course", m.CourseID)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO months (id, name, month_number, course_id, payment, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			m.ID, m.Name, m.Number, m.CourseID, m.Payment.String(), formatTime(m.CreatedAt),
		)
		if err != nil {
			return mapWriteErr("month", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetMonth implements ports.MonthStore.
func (s *Store) GetMonth(ctx context.Context, id string) (*month.Month, error) {
	m, err := scanMonth(s.db.QueryRowContext(ctx, selectMonth+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("month", id)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMonths implements ports.MonthStore.
func (s *Store) ListMonths(ctx context.Context) ([]month.Month, error) {
	return s.queryMonths(ctx, selectMonth+` ORDER BY rowid`)
}

// ListMonthsByCourse implements ports.MonthStore.
func (s *Store) ListMonthsByCourse(ctx context.Context, courseID string) ([]month.Month, error) {
	return s.queryMonths(ctx, selectMonth+` WHERE course_id = ? ORDER BY rowid`, courseID)
}

func (s *Store) queryMonths(ctx context.Context, query string, args ...any) ([]month.Month, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select months: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []month.Month{}
	for rows.Next() {
		m, err := scanMonth(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate months: %w", err)
	}
	return out, nil
}

// UpdateMonth implements ports.MonthStore.
func (s *Store) UpdateMonth(ctx context.Context, id string, patch month.Patch) error {
	var payment sql.NullString
	if patch.Payment != nil {
		payment = sql.NullString{String: patch.Payment.String(), Valid: true}
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE months SET name = COALESCE(?, name), payment = COALESCE(?, payment) WHERE id = ?`,
		nullString(patch.Name), payment, id,
	)
	if err != nil {
		return mapWriteErr("month", err)
	}
	return rowsAffected(res, "month", id)
}

// DeleteMonth implements ports.MonthStore.
func (s *Store) DeleteMonth(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM months WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete month: %w", err)
	}
	return rowsAffected(res, "month", id)
}

func scanMonth(sc scanner) (month.Month, error) {
	var (
		m       month.Month
		payment string
		created string
	)
	if err := sc.Scan(&m.ID, &m.Name, &m.Number, &m.CourseID, &payment, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return m, err
		}
		return m, fmt.Errorf("scan month: %w", err)
	}
	p, err := decimal.NewFromString(payment)
	if err != nil {
		return m, fmt.Errorf("parse payment %q: %w", payment, err)
	}
	m.Payment = p
	t, err := parseTime(created)
	if err != nil {
		return m, err
	}
	m.CreatedAt = t
	return m, nil
}
