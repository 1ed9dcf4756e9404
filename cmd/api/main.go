package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dan9191/loan-check/internal/config"
	"github.com/Dan9191/loan-check/internal/handler"
	"github.com/Dan9191/loan-check/internal/integrations/cbr"
	"github.com/Dan9191/loan-check/internal/middleware"
	"github.com/Dan9191/loan-check/internal/scoring"
	"github.com/Dan9191/loan-check/internal/service"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Key rate is fetched in the background so a CBR outage never blocks startup
	keyRates := cbr.NewKeyRateCache(cbr.NewCBRClient(cfg, logger), logger, cfg.CBRTimeout)
	scheduler, err := keyRates.Schedule(cfg.KeyRateRefresh)
	if err != nil {
		logger.Fatalf("Invalid KEY_RATE_REFRESH %q: %v", cfg.KeyRateRefresh, err)
	}
	scheduler.Start()
	defer scheduler.Stop()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.CBRTimeout)
		defer cancel()
		if err := keyRates.Refresh(ctx); err != nil {
			logger.WithError(err).Warn("Initial key rate fetch failed")
		}
	}()

	// Initialize layers
	svc := service.NewService(scoring.NewEvaluator(), keyRates, logger)
	h := handler.NewHandler(svc, logger)

	limiter := middleware.NewRateLimiter(cfg.CheckRatePerMinute, cfg.CheckRateBurst)
	defer limiter.Stop()

	// Setup router
	r := handler.NewRouter(h, limiter.Middleware(), middleware.RequestLogger(logger))

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Errorf("Server failed: %v", err)
		return
	case <-quit:
		logger.Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
}
