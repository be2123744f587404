package main

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Nirmalsaravgi/saasakitech-assignment/config"
	"github.com/Nirmalsaravgi/saasakitech-assignment/internal/reader"
	"github.com/Nirmalsaravgi/saasakitech-assignment/stock"
	"github.com/Nirmalsaravgi/saasakitech-assignment/stock/storage"
	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	cfg, err := config.LoadEnvs()
	if err != nil {
		log.Fatalf("fail to load envs: %v", err)
	}

	l, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("fail to build logger: %v", err)
	}
	defer l.Sync()

	migrations(cfg.MigrationsPath, cfg.DatabaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatal(err)
	}

	files, err := reader.ListFiles(cfg.FilePath)
	if err != nil {
		log.Fatal(err)
	}

	service := stock.NewService(
		storage.NewStockRepository(pool),
		storage.NewIngestionRepository(pool),
		nil,
		nil,
		stock.Options{
			Separator:     cfg.Separator(),
			Workers:       cfg.InsertWorkers,
			InsertTimeout: cfg.InsertTimeout,
		},
		l,
	)

	l.Info("data ingestion started", zap.Int("files", len(files)))
	for _, path := range files {
		if err := ingestFile(ctx, service, path, l); err != nil {
			log.Fatal(err)
		}
	}
}

func ingestFile(ctx context.Context, service *stock.Service, path string, l *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	report, err := service.IngestCSV(ctx, filepath.Base(path), f)
	if err != nil {
		return err
	}

	l.Info("file ingested",
		zap.String("file", path),
		zap.String("ingestion_id", report.IngestionID),
		zap.Int("total", report.TotalRecords),
		zap.Int("success", report.SuccessCount),
		zap.Int("failure", report.FailureCount),
	)
	return nil
}

func migrations(source, database string) {
	m, err := migrate.New(source, database)
	if err != nil {
		log.Fatalf("migrate error: %v", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("upload migrations error: %v", err)
	}

	log.Println("migrations finished.")
}
