package stock

//go:generate mockgen -source=stock.go -destination=mocks/mock_stock.go -package=mocks

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("no records found")
	ErrStreamRead = errors.New("csv stream read error")
)

type StockRecord struct {
	ID                 int64     `json:"-"`
	Date               time.Time `json:"date"`
	Symbol             string    `json:"symbol"`
	Series             string    `json:"series"`
	PrevClose          float64   `json:"prev_close"`
	Open               float64   `json:"open"`
	High               float64   `json:"high"`
	Low                float64   `json:"low"`
	Last               float64   `json:"last"`
	Close              float64   `json:"close"`
	VWAP               float64   `json:"vwap"`
	Volume             int64     `json:"volume"`
	Turnover           float64   `json:"turnover"`
	Trades             int64     `json:"trades"`
	Deliverable        int64     `json:"deliverable"`
	PercentDeliverable float64   `json:"percent_deliverable"`
}

// Filter narrows a query. Nil bounds are not applied; both bounds are inclusive.
type Filter struct {
	Start  *time.Time
	End    *time.Time
	Symbol string
}

// QueryParams holds the raw query string values of a read endpoint.
type QueryParams struct {
	StartDate string
	EndDate   string
	Symbol    string
}

type HighestVolume struct {
	Date   time.Time `json:"date"`
	Symbol string    `json:"symbol"`
	Volume int64     `json:"volume"`
}

type Ingestion struct {
	ID           uuid.UUID `json:"id"`
	FileName     string    `json:"file_name"`
	TotalRecords int       `json:"total_records"`
	SuccessCount int       `json:"success_count"`
	FailureCount int       `json:"failure_count"`
	Errors       []Failure `json:"errors"`
	CreatedAt    time.Time `json:"created_at"`
}

type IngestionEvent struct {
	IngestionID  uuid.UUID `json:"ingestion_id"`
	FileName     string    `json:"file_name"`
	TotalRecords int       `json:"total_records"`
	SuccessCount int       `json:"success_count"`
	FailureCount int       `json:"failure_count"`
	CompletedAt  time.Time `json:"completed_at"`
}

type Writer interface {
	// Insert a single validated record.
	Insert(ctx context.Context, record StockRecord) error
}

type Reader interface {
	// Record with the highest volume matching the filter.
	HighestVolume(ctx context.Context, filter Filter) (*StockRecord, error)
	// Mean close price of the records matching the filter.
	AverageClose(ctx context.Context, filter Filter) (float64, error)
	// Mean VWAP of the records matching the filter.
	AverageVWAP(ctx context.Context, filter Filter) (float64, error)
}

type Repository interface {
	Writer
	Reader
}

type IngestionLog interface {
	SaveIngestion(ctx context.Context, ingestion Ingestion) error
	GetIngestion(ctx context.Context, id uuid.UUID) (*Ingestion, error)
}

type QueryCache interface {
	// Key resolves key against the current cache generation. Get and Set take
	// resolved keys, so one query reads and writes a single generation.
	Key(ctx context.Context, key string) (string, error)
	// Get decodes a cached value into dst and reports whether it was found.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	// Invalidate drops every cached query result.
	Invalidate(ctx context.Context) error
}

type EventPublisher interface {
	PublishIngestion(ctx context.Context, event IngestionEvent) error
}

type Usecase interface {
	// Ingest a csv upload row by row and report per row outcomes.
	IngestCSV(ctx context.Context, fileName string, r io.Reader) (*IngestReport, error)
	// Record with the highest volume inside a date range.
	HighestVolume(ctx context.Context, params QueryParams) (*HighestVolume, error)
	// Average close price of a symbol inside a date range.
	AverageClose(ctx context.Context, params QueryParams) (float64, error)
	// Average VWAP inside a date range, optionally for one symbol.
	AverageVWAP(ctx context.Context, params QueryParams) (float64, error)
	// Stored report of a previous upload.
	GetIngestion(ctx context.Context, id uuid.UUID) (*Ingestion, error)
}
