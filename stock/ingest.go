package stock

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Nirmalsaravgi/saasakitech-assignment/internal/reader"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	ReasonMissingColumns    = "missing-required-columns"
	ReasonValidationFailed  = "validation-failed"
	ReasonPersistenceFailed = "persistence-failed"

	defaultWorkers       = 16
	defaultInsertTimeout = 10 * time.Second
)

// Failure describes why one data row was not stored. Row is the 1-based
// position of the row after the header.
type Failure struct {
	Row            int               `json:"row"`
	Reason         string            `json:"reason"`
	MissingColumns []string          `json:"missingColumns,omitempty"`
	Details        []ColumnError     `json:"details,omitempty"`
	Error          string            `json:"error,omitempty"`
	Values         map[string]string `json:"values,omitempty"`
}

type IngestReport struct {
	IngestionID  string    `json:"ingestionId,omitempty"`
	TotalRecords int       `json:"totalRecords"`
	SuccessCount int       `json:"successCount"`
	FailureCount int       `json:"failureCount"`
	Errors       []Failure `json:"errors"`
}

// accumulator is owned by a single Run call. Insert goroutines report into it
// concurrently, so every access holds mu.
type accumulator struct {
	mu       sync.Mutex
	success  int
	failures []Failure
}

func (a *accumulator) succeed() {
	a.mu.Lock()
	a.success++
	a.mu.Unlock()
}

func (a *accumulator) fail(f Failure) {
	a.mu.Lock()
	a.failures = append(a.failures, f)
	a.mu.Unlock()
}

func (a *accumulator) report() *IngestReport {
	a.mu.Lock()
	defer a.mu.Unlock()

	errs := make([]Failure, len(a.failures))
	copy(errs, a.failures)
	slices.SortStableFunc(errs, func(x, y Failure) int {
		return cmp.Compare(x.Row, y.Row)
	})

	return &IngestReport{
		TotalRecords: a.success + len(errs),
		SuccessCount: a.success,
		FailureCount: len(errs),
		Errors:       errs,
	}
}

type Coordinator struct {
	writer        Writer
	workers       int
	insertTimeout time.Duration
	logger        *zap.Logger
}

func NewCoordinator(w Writer, workers int, insertTimeout time.Duration, l *zap.Logger) *Coordinator {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if insertTimeout <= 0 {
		insertTimeout = defaultInsertTimeout
	}
	return &Coordinator{
		writer:        w,
		workers:       workers,
		insertTimeout: insertTimeout,
		logger:        l,
	}
}

// Run consumes src until it is exhausted, stores every valid row and returns
// the consolidated report once all inserts have finished. A read error from
// src aborts the run without a report.
func (c *Coordinator) Run(ctx context.Context, src reader.Reader) (*IngestReport, error) {
	acc := &accumulator{}

	// Inserts never return an error to the group so one failing row
	// does not cancel the others.
	var g errgroup.Group
	g.SetLimit(c.workers)

	recordsChan, errChan := src.Read(ctx)
	rowNumber := 0

	for recordsChan != nil || errChan != nil {
		select {
		case row, ok := <-recordsChan:
			if !ok {
				recordsChan = nil
				continue
			}
			rowNumber++
			c.processRow(ctx, &g, acc, rowNumber, row)

		case err, ok := <-errChan:
			if !ok {
				errChan = nil
				continue
			}
			_ = g.Wait()
			return nil, fmt.Errorf("%w: %w", ErrStreamRead, err)

		case <-ctx.Done():
			c.logger.Info("context canceled", zap.Int("rows", rowNumber))
			_ = g.Wait()
			return nil, ctx.Err()
		}
	}

	_ = g.Wait()

	report := acc.report()
	c.logger.Info("ingest finished",
		zap.Int("total", report.TotalRecords),
		zap.Int("success", report.SuccessCount),
		zap.Int("failure", report.FailureCount),
	)

	return report, nil
}

func (c *Coordinator) processRow(ctx context.Context, g *errgroup.Group, acc *accumulator, rowNumber int, raw reader.Row) {
	row := NormalizeKeys(raw)

	if missing := MissingColumns(row); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, col := range missing {
			names[i] = col.String()
		}
		acc.fail(Failure{
			Row:            rowNumber,
			Reason:         ReasonMissingColumns,
			MissingColumns: names,
			Values:         row,
		})
		return
	}

	validation := ValidateRow(row)
	if !validation.IsValid {
		acc.fail(Failure{
			Row:     rowNumber,
			Reason:  ReasonValidationFailed,
			Details: validation.Errors,
		})
		return
	}

	record := buildRecord(row)

	// Blocks while all workers are busy, which bounds in-flight inserts.
	g.Go(func() error {
		insertCtx, cancel := context.WithTimeout(ctx, c.insertTimeout)
		defer cancel()

		if err := c.writer.Insert(insertCtx, record); err != nil {
			c.logger.Warn("insert failed", zap.Int("row", rowNumber), zap.Error(err))
			acc.fail(Failure{
				Row:    rowNumber,
				Reason: ReasonPersistenceFailed,
				Error:  err.Error(),
			})
			return nil
		}
		acc.succeed()
		return nil
	})
}
