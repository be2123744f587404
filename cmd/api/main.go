package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nirmalsaravgi/saasakitech-assignment/config"
	"github.com/Nirmalsaravgi/saasakitech-assignment/internal/cache"
	"github.com/Nirmalsaravgi/saasakitech-assignment/internal/controllers"
	"github.com/Nirmalsaravgi/saasakitech-assignment/internal/events"
	"github.com/Nirmalsaravgi/saasakitech-assignment/internal/middleware"
	"github.com/Nirmalsaravgi/saasakitech-assignment/stock"
	"github.com/Nirmalsaravgi/saasakitech-assignment/stock/storage"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		l.Fatal("database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		l.Fatal("database ping", zap.Error(err))
	}

	migrations(cfg.MigrationsPath, cfg.DatabaseURL, l)

	var queryCache stock.QueryCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			l.Fatal("redis ping", zap.Error(err))
		}
		redisCache := cache.NewRedisCache(client, cfg.CacheTTL)
		defer redisCache.Close()
		queryCache = redisCache
	}

	var publisher stock.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	repository := storage.NewStockRepository(pool)
	ingestions := storage.NewIngestionRepository(pool)
	service := stock.NewService(repository, ingestions, queryCache, publisher, stock.Options{
		Separator:     cfg.Separator(),
		Workers:       cfg.InsertWorkers,
		InsertTimeout: cfg.InsertTimeout,
	}, l)
	controller := controllers.NewController(service, cfg.MaxUploadBytes, l)

	router := controllers.SetupRouter(controller, gin.Recovery(), middleware.Logging(l))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		l.Info("starting server", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	l.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("server shutdown", zap.Error(err))
	}
}

func migrations(source, database string, l *zap.Logger) {
	m, err := migrate.New(source, database)
	if err != nil {
		l.Fatal("migrate error", zap.Error(err))
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		l.Fatal("upload migrations error", zap.Error(err))
	}

	l.Info("migrations finished")
}
