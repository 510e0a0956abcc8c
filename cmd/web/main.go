package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/booking-portal/config"
	"github.com/jwalitptl/booking-portal/internal/booking"
	bookingHandler "github.com/jwalitptl/booking-portal/internal/handler/booking"
	calendarHandler "github.com/jwalitptl/booking-portal/internal/handler/calendar"
	"github.com/jwalitptl/booking-portal/internal/middleware"
	"github.com/jwalitptl/booking-portal/internal/router"
	"github.com/jwalitptl/booking-portal/pkg/logger"
	"github.com/jwalitptl/booking-portal/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(&logger.Config{Level: cfg.Logging.Level})

	m := metrics.New("booking_portal")
	var registry *prometheus.Registry
	if cfg.Monitoring.PrometheusEnabled {
		registry = prometheus.NewRegistry()
		if err := m.Register(registry); err != nil {
			log.Fatal().Err(err).Msg("failed to register metrics")
		}
	}

	client := booking.New(booking.Config{
		BaseURL:    cfg.Backend.URL,
		HTTPClient: &http.Client{Timeout: cfg.Backend.Timeout},
		Logger:     &appLogger,
		Metrics:    m,
	})

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Security.AllowedOrigins
	}

	r := router.NewRouter(router.Config{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimitRPS:     cfg.RateLimit.RequestsPerSecond,
		RateLimitBurst:   cfg.RateLimit.Burst,
		CORSConfig:       corsConfig,
		MetricsPath:      cfg.Monitoring.MetricsPath,
		TemplateGlob:     "web/templates/*.tmpl",
		Metrics:          m,
		Registry:         registry,
	},
		bookingHandler.NewHandler(client),
		calendarHandler.NewHandler(client),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info().Int("port", cfg.Server.Port).Str("backend", cfg.Backend.URL).Msg("starting booking portal")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server exited properly")
}
