package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kelseyhightower/envconfig"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/salonbase/booking-api/internal/repository/postgres"
	"github.com/salonbase/booking-api/pkg/logger"
	"github.com/salonbase/booking-api/pkg/messaging/redis"
	"github.com/salonbase/booking-api/pkg/metrics"
	"github.com/salonbase/booking-api/pkg/worker"
)

// Config is read from the environment with the WORKER_ prefix.
type Config struct {
	DatabaseURL    string        `envconfig:"DATABASE_URL" required:"true"`
	RedisURL       string        `envconfig:"REDIS_URL" default:"redis://localhost:6379"`
	HealthPort     string        `envconfig:"HEALTH_PORT" default:"8081"`
	BatchSize      int           `envconfig:"BATCH_SIZE" default:"100"`
	PollInterval   time.Duration `envconfig:"POLL_INTERVAL" default:"5s"`
	MaxRetries     int           `envconfig:"MAX_RETRIES" default:"3"`
	RetryDelay     time.Duration `envconfig:"RETRY_DELAY" default:"5s"`
	EventRetention time.Duration `envconfig:"EVENT_RETENTION" default:"168h"`
}

func setupHealthCheck(port string, appLogger *logger.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		if err := http.ListenAndServe(":"+port, mux); err != nil {
			appLogger.ZL.Error().Err(err).Msg("health check server failed")
			os.Exit(1)
		}
	}()
}

func main() {
	var cfg Config
	if err := envconfig.Process("worker", &cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	appLogger := &logger.Logger{ZL: log.Logger}

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	broker, err := redis.NewRedisBroker(redis.Config{
		URL:          cfg.RedisURL,
		MaxRetries:   3,
		RetryBackoff: 100 * time.Millisecond,
		PoolSize:     10,
		MinIdleConns: 2,
	}, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Redis broker")
	}
	defer broker.Close()

	baseRepo := postgres.NewBaseRepository(db)
	outboxRepo := postgres.NewOutboxRepository(baseRepo)

	processor := worker.NewOutboxProcessor(
		outboxRepo,
		broker,
		worker.OutboxProcessorConfig{
			BatchSize:    cfg.BatchSize,
			PollInterval: cfg.PollInterval,
			MaxRetries:   cfg.MaxRetries,
			RetryDelay:   cfg.RetryDelay,
		},
		appLogger,
		metrics.New("outbox_processor"),
	)

	setupHealthCheck(cfg.HealthPort, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		appLogger.Info("shutting down...")
		cancel()
	}()

	// Relayed events are kept for a retention window, then purged.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deleted, err := outboxRepo.DeleteProcessedBefore(ctx, time.Now().Add(-cfg.EventRetention))
				if err != nil {
					appLogger.Error(err, "failed to purge processed events")
					continue
				}
				if deleted > 0 {
					appLogger.Info("purged processed events", "count", deleted)
				}
			}
		}
	}()

	processor.Start(ctx)
}
