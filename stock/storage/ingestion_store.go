package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Nirmalsaravgi/saasakitech-assignment/internal/batcher"
	"github.com/Nirmalsaravgi/saasakitech-assignment/stock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	batchSize = 5000
)

var _ stock.IngestionLog = (*IngestionRepository)(nil)

type IngestionRepository struct {
	pool *pgxpool.Pool
}

func NewIngestionRepository(pool *pgxpool.Pool) *IngestionRepository {
	return &IngestionRepository{
		pool: pool,
	}
}

// SaveIngestion stores the upload summary and copies its row failures in batches.
func (r *IngestionRepository) SaveIngestion(ctx context.Context, in stock.Ingestion) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction error: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO ingestions (id, file_name, total_records, success_count, failure_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, in.ID, in.FileName, in.TotalRecords, in.SuccessCount, in.FailureCount, in.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert ingestion error: %w", err)
	}

	batches, err := batcher.Batch(in.Errors, batchSize)
	if err != nil {
		return fmt.Errorf("batch error: %w", err)
	}

	columns := []string{"ingestion_id", "row_number", "reason", "detail"}
	for idx, batch := range batches {
		rows := make([][]any, len(batch))
		for i, f := range batch {
			detail, err := json.Marshal(f)
			if err != nil {
				return fmt.Errorf("encode failure of row %d: %w", f.Row, err)
			}
			rows[i] = []any{in.ID, f.Row, f.Reason, detail}
		}

		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"ingestion_errors"}, columns, pgx.CopyFromRows(rows)); err != nil {
			return fmt.Errorf("sql copy error batch %d: %w", idx+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit ingestion error: %w", err)
	}

	return nil
}

func (r *IngestionRepository) GetIngestion(ctx context.Context, id uuid.UUID) (*stock.Ingestion, error) {
	in := stock.Ingestion{Errors: []stock.Failure{}}

	err := r.pool.QueryRow(ctx, `
		SELECT id, file_name, total_records, success_count, failure_count, created_at
		FROM ingestions
		WHERE id = $1
	`, id).Scan(&in.ID, &in.FileName, &in.TotalRecords, &in.SuccessCount, &in.FailureCount, &in.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stock.ErrNotFound
		}
		return nil, fmt.Errorf("error querying ingestion: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT detail
		FROM ingestion_errors
		WHERE ingestion_id = $1
		ORDER BY row_number, id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("error querying ingestion errors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var detail []byte
		if err := rows.Scan(&detail); err != nil {
			return nil, fmt.Errorf("scan ingestion error: %w", err)
		}

		var f stock.Failure
		if err := json.Unmarshal(detail, &f); err != nil {
			return nil, fmt.Errorf("decode ingestion error: %w", err)
		}
		in.Errors = append(in.Errors, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingestion errors: %w", err)
	}

	return &in, nil
}
