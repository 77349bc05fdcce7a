package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AgustinTorres17/i-datos-55-cents/internal/metrics"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// ErrEmptyBatch is returned by Insert when there is nothing to write
var ErrEmptyBatch = errors.New("empty batch")

// TxBeginner starts a transaction. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Copyable is a record that knows its values in destination column order
type Copyable interface {
	CopyValues() []any
}

// BulkLoader appends batches of records to a table inside one transaction
type BulkLoader struct {
	db TxBeginner
}

// NewBulkLoader creates a bulk loader on top of db
func NewBulkLoader(db TxBeginner) *BulkLoader {
	return &BulkLoader{db: db}
}

// Rows converts records into the row slice expected by Insert
func Rows[T Copyable](records []T) [][]any {
	rows := make([][]any, len(records))
	for i, rec := range records {
		rows[i] = rec.CopyValues()
	}
	return rows
}

// Insert writes every row to table with COPY and commits once.
// Either all rows are persisted or none are: any failure rolls the
// transaction back. Rows are appended; existing rows are never touched.
func (b *BulkLoader) Insert(ctx context.Context, table models.Table, rows [][]any) (n int64, err error) {
	if len(rows) == 0 {
		return 0, ErrEmptyBatch
	}

	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.RecordDBQuery("copy", table.Name, status, time.Since(start).Seconds())
	}()

	tx, err := b.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Error().Err(rbErr).Str("table", table.Name).Msg("Failed to roll back transaction")
		}
	}()

	n, err = tx.CopyFrom(ctx, pgx.Identifier{table.Name}, table.Columns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("failed to copy into %s: %w", table.Name, err)
	}
	if n != int64(len(rows)) {
		err = fmt.Errorf("failed to copy into %s: wrote %d of %d rows", table.Name, n, len(rows))
		return 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit %s: %w", table.Name, err)
	}

	log.Debug().
		Str("table", table.Name).
		Int64("rows", n).
		Dur("duration", time.Since(start)).
		Msg("Batch committed")

	return n, nil
}
