package stock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Nirmalsaravgi/saasakitech-assignment/internal/reader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Options struct {
	Separator     rune
	Workers       int
	InsertTimeout time.Duration
}

type Service struct {
	repository  Repository
	ingestions  IngestionLog
	cache       QueryCache
	events      EventPublisher
	coordinator *Coordinator
	newReader   func(io.Reader) reader.Reader
	logger      *zap.Logger
}

// NewService wires the use cases. ingestions, cache and events may be nil,
// in which case the matching step is skipped.
func NewService(r Repository, ingestions IngestionLog, cache QueryCache, events EventPublisher, opts Options, l *zap.Logger) *Service {
	sep := opts.Separator
	if sep == 0 {
		sep = ','
	}

	return &Service{
		repository:  r,
		ingestions:  ingestions,
		cache:       cache,
		events:      events,
		coordinator: NewCoordinator(r, opts.Workers, opts.InsertTimeout, l),
		newReader: func(src io.Reader) reader.Reader {
			return reader.NewCSVReader(src, sep, l)
		},
		logger: l,
	}
}

// WithReader replaces the csv reader factory.
func (s *Service) WithReader(fn func(io.Reader) reader.Reader) *Service {
	s.newReader = fn
	return s
}

func (s *Service) IngestCSV(ctx context.Context, fileName string, r io.Reader) (*IngestReport, error) {
	s.logger.Info("ingesting file", zap.String("file", fileName))

	report, err := s.coordinator.Run(ctx, s.newReader(r))
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", fileName, err)
	}

	id := uuid.New()
	report.IngestionID = id.String()

	if s.ingestions != nil {
		err := s.ingestions.SaveIngestion(ctx, Ingestion{
			ID:           id,
			FileName:     fileName,
			TotalRecords: report.TotalRecords,
			SuccessCount: report.SuccessCount,
			FailureCount: report.FailureCount,
			Errors:       report.Errors,
			CreatedAt:    time.Now(),
		})
		if err != nil {
			s.logger.Error("saving ingestion log", zap.String("ingestion_id", id.String()), zap.Error(err))
			report.IngestionID = ""
		}
	}

	if s.cache != nil && report.SuccessCount > 0 {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("query cache invalidation", zap.Error(err))
		}
	}

	if s.events != nil {
		err := s.events.PublishIngestion(ctx, IngestionEvent{
			IngestionID:  id,
			FileName:     fileName,
			TotalRecords: report.TotalRecords,
			SuccessCount: report.SuccessCount,
			FailureCount: report.FailureCount,
			CompletedAt:  time.Now(),
		})
		if err != nil {
			s.logger.Warn("publishing ingestion event", zap.String("ingestion_id", id.String()), zap.Error(err))
		}
	}

	return report, nil
}

func (s *Service) HighestVolume(ctx context.Context, params QueryParams) (*HighestVolume, error) {
	if err := requireDateRange(params); err != nil {
		return nil, err
	}

	filter := toFilter(params)
	key, cacheable := s.resolveCacheKey(ctx, cacheKey("highest_volume", filter))

	var cached HighestVolume
	if cacheable && s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	record, err := s.repository.HighestVolume(ctx, filter)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching highest volume error: %w", err)
	}

	result := &HighestVolume{
		Date:   record.Date,
		Symbol: record.Symbol,
		Volume: record.Volume,
	}
	if cacheable {
		s.cacheSet(ctx, key, result)
	}

	return result, nil
}

func (s *Service) AverageClose(ctx context.Context, params QueryParams) (float64, error) {
	if err := requireSymbolAndDateRange(params); err != nil {
		return 0, err
	}
	return s.average(ctx, "average_close", toFilter(params), s.repository.AverageClose)
}

func (s *Service) AverageVWAP(ctx context.Context, params QueryParams) (float64, error) {
	if err := requireDateRange(params); err != nil {
		return 0, err
	}
	return s.average(ctx, "average_vwap", toFilter(params), s.repository.AverageVWAP)
}

func (s *Service) GetIngestion(ctx context.Context, id uuid.UUID) (*Ingestion, error) {
	if s.ingestions == nil {
		return nil, ErrNotFound
	}

	ingestion, err := s.ingestions.GetIngestion(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching ingestion error: %w", err)
	}

	return ingestion, nil
}

func (s *Service) average(ctx context.Context, op string, filter Filter, query func(context.Context, Filter) (float64, error)) (float64, error) {
	key, cacheable := s.resolveCacheKey(ctx, cacheKey(op, filter))

	var cached float64
	if cacheable && s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	avg, err := query(ctx, filter)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("fetching %s error: %w", op, err)
	}

	if cacheable {
		s.cacheSet(ctx, key, avg)
	}
	return avg, nil
}

// resolveCacheKey pins a query to the cache generation current when it starts.
func (s *Service) resolveCacheKey(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	resolved, err := s.cache.Key(ctx, key)
	if err != nil {
		s.logger.Warn("query cache key", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return resolved, true
}

func (s *Service) cacheGet(ctx context.Context, key string, dst any) bool {
	found, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		s.logger.Warn("query cache read", zap.String("key", key), zap.Error(err))
		return false
	}
	return found
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn("query cache write", zap.String("key", key), zap.Error(err))
	}
}
