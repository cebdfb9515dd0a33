package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/batch-service/internal/ports"
)

// AddBatch implements ports.BatchStore.
func (s *Store) AddBatch(ctx context.Context, b batch.Batch) (*batch.Batch, error) {
	b.ID = s.newID()
	b.CreatedAt = s.now()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO batches (id, name, created_at) VALUES (?, ?, ?)`,
		b.ID, b.Name, formatTime(b.CreatedAt),
	)
	if err != nil {
		return nil, mapWriteErr("batch", err)
	}
	return &b, nil
}

// GetBatch implements ports.BatchStore.
func (s *Store) GetBatch(ctx context.Context, id string) (*batch.Batch, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM batches WHERE id = ?`, id)

	b, err := scanBatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("batch", id)
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBatches implements ports.BatchStore.
func (s *Store) ListBatches(ctx context.Context) ([]batch.Batch, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM batches ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("select batches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []batch.Batch{}
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}
	return out, nil
}

// UpdateBatch implements ports.BatchStore.
func (s *Store) UpdateBatch(ctx context.Context, id string, patch batch.Patch) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE batches SET name = COALESCE(?, name) WHERE id = ?`,
		nullString(patch.Name), id,
	)
	if err != nil {
		return mapWriteErr("batch", err)
	}
	return rowsAffected(res, "batch", id)
}

// DeleteBatch implements ports.BatchStore. Descendants are counted and the
// batch removed inside one transaction; the foreign keys cascade the rest.
func (s *Store) DeleteBatch(ctx context.Context, id string) (ports.Cascade, error) {
	var removed ports.Cascade
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "batches", id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("batch", id)
		}
		if removed.Courses, err = count(ctx, tx,
			`SELECT COUNT(*) FROM courses WHERE batch_id = ?`, id); err != nil {
			return err
		}
		if removed.Months, err = count(ctx, tx,
			`SELECT COUNT(*) FROM months WHERE course_id IN (SELECT id FROM courses WHERE batch_id = ?)`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM batches WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete batch: %w", err)
		}
		return nil
	})
	if err != nil {
		return ports.Cascade{}, err
	}
	return removed, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBatch(sc scanner) (batch.Batch, error) {
	var (
		b       batch.Batch
		created string
	)
	if err := sc.Scan(&b.ID, &b.Name, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return b, err
		}
		return b, fmt.Errorf("scan batch: %w", err)
	}
	t, err := parseTime(created)
	if err != nil {
		return b, err
	}
	b.CreatedAt = t
	return b, nil
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}
