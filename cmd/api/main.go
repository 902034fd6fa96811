package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/salonbase/booking-api/internal/config"
	"github.com/salonbase/booking-api/internal/handler"
	blockedDateHandler "github.com/salonbase/booking-api/internal/handler/blockeddate"
	bookingHandler "github.com/salonbase/booking-api/internal/handler/booking"
	promotionHandler "github.com/salonbase/booking-api/internal/handler/promotion"
	"github.com/salonbase/booking-api/internal/middleware"
	"github.com/salonbase/booking-api/internal/repository/postgres"
	"github.com/salonbase/booking-api/internal/router"
	bookingService "github.com/salonbase/booking-api/internal/service/booking"
	promotionService "github.com/salonbase/booking-api/internal/service/promotion"
	scheduleService "github.com/salonbase/booking-api/internal/service/schedule"
	"github.com/salonbase/booking-api/pkg/logger"
	"github.com/salonbase/booking-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	businessRepo := postgres.NewBusinessRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	staffRepo := postgres.NewStaffRepository(db)
	blockedDateRepo := postgres.NewBlockedDateRepository(db)
	promotionRepo := postgres.NewPromotionRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)

	// Services
	appMetrics := metrics.New("booking_api")
	promotionSvc := promotionService.NewService(promotionRepo, appLogger)
	scheduleSvc := scheduleService.NewService(blockedDateRepo, staffRepo, appLogger)
	bookingSvc := bookingService.NewService(
		businessRepo,
		serviceRepo,
		staffRepo,
		bookingRepo,
		blockedDateRepo,
		promotionSvc,
		appLogger,
		appMetrics,
	)

	// Handlers
	h := handler.NewHandler()
	bookingH := bookingHandler.NewHandler(bookingSvc)
	blockedDateH := blockedDateHandler.NewHandler(scheduleSvc)
	promotionH := promotionHandler.NewHandler(promotionSvc)

	r := router.NewRouter(bookingH, blockedDateH, promotionH, h, router.Config{
		RateLimit:     cfg.RateLimit.RequestsPerSecond,
		RateBurst:     cfg.RateLimit.Burst,
		CORSConfig:    middleware.DefaultCORSConfig(),
		MetricsPrefix: "booking_api_http",
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
