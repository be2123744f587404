package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Nirmalsaravgi/saasakitech-assignment/stock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ stock.Repository = (*StockRepository)(nil)

type StockRepository struct {
	pool *pgxpool.Pool
}

func NewStockRepository(pool *pgxpool.Pool) *StockRepository {
	return &StockRepository{
		pool: pool,
	}
}

func (r *StockRepository) Insert(ctx context.Context, rec stock.StockRecord) error {
	query := `
		INSERT INTO stock_records (
			date, symbol, series, prev_close, open, high, low, last, close,
			vwap, volume, turnover, trades, deliverable, percent_deliverable
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.pool.Exec(ctx, query,
		rec.Date,
		rec.Symbol,
		rec.Series,
		rec.PrevClose,
		rec.Open,
		rec.High,
		rec.Low,
		rec.Last,
		rec.Close,
		rec.VWAP,
		rec.Volume,
		rec.Turnover,
		rec.Trades,
		rec.Deliverable,
		rec.PercentDeliverable,
	)
	if err != nil {
		return fmt.Errorf("insert stock record error: %w", err)
	}

	return nil
}

func (r *StockRepository) HighestVolume(ctx context.Context, filter stock.Filter) (*stock.StockRecord, error) {
	where, args := whereClause(filter)
	query := `
		SELECT id, date, symbol, series, prev_close, open, high, low, last, close,
			vwap, volume, turnover, trades, deliverable, percent_deliverable
		FROM stock_records` + where + `
		ORDER BY volume DESC, id ASC
		LIMIT 1
	`

	var rec stock.StockRecord
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&rec.ID,
		&rec.Date,
		&rec.Symbol,
		&rec.Series,
		&rec.PrevClose,
		&rec.Open,
		&rec.High,
		&rec.Low,
		&rec.Last,
		&rec.Close,
		&rec.VWAP,
		&rec.Volume,
		&rec.Turnover,
		&rec.Trades,
		&rec.Deliverable,
		&rec.PercentDeliverable,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stock.ErrNotFound
		}
		return nil, fmt.Errorf("error querying highest volume: %w", err)
	}

	return &rec, nil
}

func (r *StockRepository) AverageClose(ctx context.Context, filter stock.Filter) (float64, error) {
	return r.average(ctx, "close", filter)
}

func (r *StockRepository) AverageVWAP(ctx context.Context, filter stock.Filter) (float64, error) {
	return r.average(ctx, "vwap", filter)
}

// column is never user input.
func (r *StockRepository) average(ctx context.Context, column string, filter stock.Filter) (float64, error) {
	where, args := whereClause(filter)
	query := `SELECT COALESCE(AVG(` + column + `), 0), COUNT(*) FROM stock_records` + where

	var avg float64
	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&avg, &count); err != nil {
		return 0, fmt.Errorf("error querying average %s: %w", column, err)
	}

	if count == 0 {
		return 0, stock.ErrNotFound
	}

	return avg, nil
}

func whereClause(filter stock.Filter) (string, []any) {
	var conds []string
	var args []any

	if filter.Start != nil {
		args = append(args, *filter.Start)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		conds = append(conds, fmt.Sprintf("date <= $%d", len(args)))
	}
	if filter.Symbol != "" {
		args = append(args, filter.Symbol)
		conds = append(conds, fmt.Sprintf("symbol = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}

	return "\n\t\tWHERE " + strings.Join(conds, " AND "), args
}
