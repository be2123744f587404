package stock_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Nirmalsaravgi/saasakitech-assignment/stock"
	"github.com/Nirmalsaravgi/saasakitech-assignment/stock/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const csvHeader = "Date,Symbol,Series,Prev Close,Open,High,Low,Last,Close,VWAP,Volume,Turnover,Trades,Deliverable,%Deliverable\n"

type serviceMocks struct {
	repo       *mocks.MockRepository
	ingestions *mocks.MockIngestionLog
	cache      *mocks.MockQueryCache
	events     *mocks.MockEventPublisher
}

func newService(t *testing.T) (*stock.Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:       mocks.NewMockRepository(ctrl),
		ingestions: mocks.NewMockIngestionLog(ctrl),
		cache:      mocks.NewMockQueryCache(ctrl),
		events:     mocks.NewMockEventPublisher(ctrl),
	}
	m.cache.EXPECT().Key(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) (string, error) {
			return "gen0:" + key, nil
		}).
		AnyTimes()

	svc := stock.NewService(m.repo, m.ingestions, m.cache, m.events, stock.Options{Workers: 2}, zap.NewNop())
	return svc, m
}

func TestService_IngestCSV(t *testing.T) {
	t.Run("stores valid rows and reports failures", func(t *testing.T) {
		svc, m := newService(t)

		body := csvHeader +
			"2024-01-01,X,EQ,100,110,120,105,115,110,113,10000,100000,150,8000,80\n" +
			"invalid-date,Y,EQ,100,110,120,105,115,110,113,10000,100000,150,8000,80\n"

		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec stock.StockRecord) error {
				assert.Equal(t, "X", rec.Symbol)
				assert.Equal(t, int64(10000), rec.Volume)
				return nil
			})

		var saved stock.Ingestion
		m.ingestions.EXPECT().SaveIngestion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in stock.Ingestion) error {
				saved = in
				return nil
			})
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
		m.events.EXPECT().PublishIngestion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev stock.IngestionEvent) error {
				assert.Equal(t, "data.csv", ev.FileName)
				assert.Equal(t, 2, ev.TotalRecords)
				return nil
			})

		report, err := svc.IngestCSV(t.Context(), "data.csv", strings.NewReader(body))

		assert.NoError(t, err)
		assert.Equal(t, 2, report.TotalRecords)
		assert.Equal(t, 1, report.SuccessCount)
		assert.Equal(t, 1, report.FailureCount)
		assert.Equal(t, saved.ID.String(), report.IngestionID)
		assert.Equal(t, "data.csv", saved.FileName)
		assert.Len(t, saved.Errors, 1)
	})

	t.Run("header only upload", func(t *testing.T) {
		svc, m := newService(t)

		m.ingestions.EXPECT().SaveIngestion(gomock.Any(), gomock.Any()).Return(nil)
		m.events.EXPECT().PublishIngestion(gomock.Any(), gomock.Any()).Return(nil)

		report, err := svc.IngestCSV(t.Context(), "empty.csv", strings.NewReader(csvHeader))

		assert.NoError(t, err)
		assert.Equal(t, 0, report.TotalRecords)
		assert.Equal(t, 0, report.SuccessCount)
		assert.Equal(t, 0, report.FailureCount)
		assert.Equal(t, []stock.Failure{}, report.Errors)
	})

	t.Run("malformed csv is fatal", func(t *testing.T) {
		svc, _ := newService(t)

		body := csvHeader + "2024-01-01,X,EQ\n"

		report, err := svc.IngestCSV(t.Context(), "bad.csv", strings.NewReader(body))

		assert.Nil(t, report)
		assert.ErrorIs(t, err, stock.ErrStreamRead)
	})

	t.Run("ingestion log failure keeps the report", func(t *testing.T) {
		svc, m := newService(t)

		m.ingestions.EXPECT().SaveIngestion(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		m.events.EXPECT().PublishIngestion(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		report, err := svc.IngestCSV(t.Context(), "empty.csv", strings.NewReader(csvHeader))

		assert.NoError(t, err)
		assert.Empty(t, report.IngestionID)
	})
}

func TestService_MissingParams(t *testing.T) {
	ctx := t.Context()
	svc, _ := newService(t)

	tests := []struct {
		name    string
		call    func(stock.QueryParams) error
		params  stock.QueryParams
		message string
	}{
		{
			name:    "highest volume without dates",
			call:    func(p stock.QueryParams) error { _, err := svc.HighestVolume(ctx, p); return err },
			params:  stock.QueryParams{Symbol: "X"},
			message: "Both start_date and end_date are required",
		},
		{
			name:    "highest volume without start",
			call:    func(p stock.QueryParams) error { _, err := svc.HighestVolume(ctx, p); return err },
			params:  stock.QueryParams{EndDate: "2024-12-31"},
			message: "start_date is required",
		},
		{
			name:    "average vwap without end",
			call:    func(p stock.QueryParams) error { _, err := svc.AverageVWAP(ctx, p); return err },
			params:  stock.QueryParams{StartDate: "2024-01-01"},
			message: "end_date is required",
		},
		{
			name:    "average close without anything",
			call:    func(p stock.QueryParams) error { _, err := svc.AverageClose(ctx, p); return err },
			params:  stock.QueryParams{},
			message: "Symbol, start_date, and end_date are required",
		},
		{
			name:    "average close without symbol",
			call:    func(p stock.QueryParams) error { _, err := svc.AverageClose(ctx, p); return err },
			params:  stock.QueryParams{StartDate: "2024-01-01", EndDate: "2024-12-31"},
			message: "Symbol is required",
		},
		{
			name:    "average close without end",
			call:    func(p stock.QueryParams) error { _, err := svc.AverageClose(ctx, p); return err },
			params:  stock.QueryParams{Symbol: "X", StartDate: "2024-01-01"},
			message: "end_date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call(tt.params)

			var missing *stock.MissingParamError
			if assert.ErrorAs(t, err, &missing) {
				assert.Equal(t, tt.message, missing.Message)
			}
		})
	}
}

func TestService_HighestVolume(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	params := stock.QueryParams{StartDate: "2024-01-01", EndDate: "2024-12-31", Symbol: "ULTRACEMCO"}

	t.Run("queries the repository on cache miss", func(t *testing.T) {
		svc, m := newService(t)

		key := "gen0:highest_volume:2024-01-01:2024-12-31:ULTRACEMCO"
		m.cache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(false, nil)
		m.repo.EXPECT().
			HighestVolume(gomock.Any(), stock.Filter{Start: &start, End: &end, Symbol: "ULTRACEMCO"}).
			Return(&stock.StockRecord{Date: start, Symbol: "ULTRACEMCO", Volume: 100000}, nil)
		m.cache.EXPECT().Set(gomock.Any(), key, gomock.Any()).Return(nil)

		result, err := svc.HighestVolume(t.Context(), params)

		assert.NoError(t, err)
		assert.Equal(t, &stock.HighestVolume{Date: start, Symbol: "ULTRACEMCO", Volume: 100000}, result)
	})

	t.Run("unparseable dates are not applied", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
		m.repo.EXPECT().
			HighestVolume(gomock.Any(), stock.Filter{End: &end}).
			Return(&stock.StockRecord{Symbol: "A", Volume: 1}, nil)
		m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		_, err := svc.HighestVolume(t.Context(), stock.QueryParams{StartDate: "not-a-date", EndDate: "2024-12-31"})

		assert.NoError(t, err)
	})

	t.Run("served from cache", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dst any) (bool, error) {
				*dst.(*stock.HighestVolume) = stock.HighestVolume{Symbol: "CACHED", Volume: 7}
				return true, nil
			})

		result, err := svc.HighestVolume(t.Context(), params)

		assert.NoError(t, err)
		assert.Equal(t, "CACHED", result.Symbol)
	})

	t.Run("generation is resolved once per query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		cache := mocks.NewMockQueryCache(ctrl)
		svc := stock.NewService(repo, nil, cache, nil, stock.Options{}, zap.NewNop())

		cache.EXPECT().Key(gomock.Any(), gomock.Any()).Return("gen4:hv", nil).Times(1)
		cache.EXPECT().Get(gomock.Any(), "gen4:hv", gomock.Any()).Return(false, nil)
		repo.EXPECT().HighestVolume(gomock.Any(), gomock.Any()).Return(&stock.StockRecord{Symbol: "A", Volume: 1}, nil)
		cache.EXPECT().Set(gomock.Any(), "gen4:hv", gomock.Any()).Return(nil)

		_, err := svc.HighestVolume(t.Context(), params)

		assert.NoError(t, err)
	})

	t.Run("cache skipped when the generation cannot be read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		cache := mocks.NewMockQueryCache(ctrl)
		svc := stock.NewService(repo, nil, cache, nil, stock.Options{}, zap.NewNop())

		cache.EXPECT().Key(gomock.Any(), gomock.Any()).Return("", errors.New("redis down"))
		repo.EXPECT().AverageVWAP(gomock.Any(), gomock.Any()).Return(42.0, nil)

		avg, err := svc.AverageVWAP(t.Context(), params)

		assert.NoError(t, err)
		assert.Equal(t, 42.0, avg)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		m.repo.EXPECT().HighestVolume(gomock.Any(), gomock.Any()).Return(nil, stock.ErrNotFound)

		result, err := svc.HighestVolume(t.Context(), params)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, stock.ErrNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		m.repo.EXPECT().HighestVolume(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

		_, err := svc.HighestVolume(t.Context(), params)

		assert.ErrorContains(t, err, "fetching highest volume error")
		assert.NotErrorIs(t, err, stock.ErrNotFound)
	})
}

func TestService_Averages(t *testing.T) {
	params := stock.QueryParams{StartDate: "2024-01-01", EndDate: "2024-12-31", Symbol: "ULTRACEMCO"}

	t.Run("average close", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		m.repo.EXPECT().AverageClose(gomock.Any(), gomock.Any()).Return(115.3, nil)
		m.cache.EXPECT().Set(gomock.Any(), "gen0:average_close:2024-01-01:2024-12-31:ULTRACEMCO", 115.3).Return(nil)

		avg, err := svc.AverageClose(t.Context(), params)

		assert.NoError(t, err)
		assert.Equal(t, 115.3, avg)
	})

	t.Run("average vwap without symbol", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		m.repo.EXPECT().
			AverageVWAP(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f stock.Filter) (float64, error) {
				assert.Empty(t, f.Symbol)
				return 99.5, nil
			})
		m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		avg, err := svc.AverageVWAP(t.Context(), stock.QueryParams{StartDate: "2024-01-01", EndDate: "2024-12-31"})

		assert.NoError(t, err)
		assert.Equal(t, 99.5, avg)
	})

	t.Run("average vwap not found", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		m.repo.EXPECT().AverageVWAP(gomock.Any(), gomock.Any()).Return(0.0, stock.ErrNotFound)

		_, err := svc.AverageVWAP(t.Context(), params)

		assert.ErrorIs(t, err, stock.ErrNotFound)
	})
}

func TestService_GetIngestion(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc, m := newService(t)
		m.ingestions.EXPECT().GetIngestion(gomock.Any(), id).Return(&stock.Ingestion{ID: id, FileName: "a.csv"}, nil)

		in, err := svc.GetIngestion(t.Context(), id)

		assert.NoError(t, err)
		assert.Equal(t, "a.csv", in.FileName)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, m := newService(t)
		m.ingestions.EXPECT().GetIngestion(gomock.Any(), id).Return(nil, stock.ErrNotFound)

		_, err := svc.GetIngestion(t.Context(), id)

		assert.ErrorIs(t, err, stock.ErrNotFound)
	})

	t.Run("no ingestion log configured", func(t *testing.T) {
		svc := stock.NewService(nil, nil, nil, nil, stock.Options{}, zap.NewNop())

		_, err := svc.GetIngestion(t.Context(), id)

		assert.ErrorIs(t, err, stock.ErrNotFound)
	})
}
