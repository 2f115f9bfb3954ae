package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/kedai-ramen/site-backend/api"
	"github.com/kedai-ramen/site-backend/internal/platform/config"
	"github.com/kedai-ramen/site-backend/internal/platform/health"
	"github.com/kedai-ramen/site-backend/internal/platform/logging"
	"github.com/kedai-ramen/site-backend/internal/platform/metrics"
	"github.com/kedai-ramen/site-backend/internal/platform/shutdown"
	"github.com/kedai-ramen/site-backend/internal/platform/startup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := startup.OpenStore(context.Background(), cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to open settings store: %w", err)
	}

	coordinator := shutdown.NewCoordinator(logger, cfg.Server.ShutdownTimeout)
	coordinator.OnShutdown(store.Driver, store.Close)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(cfg.Server, api.Deps{
		Logger:   logger,
		Store:    store.Store,
		Metrics:  metrics.New(reg),
		Gatherer: reg,
		Checkers: []health.Checker{health.NewPingChecker(store.Driver, store.Store, 0)},
	})

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("address", cfg.Server.Address), zap.String("store", store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	coordinator.ListenForSignalsAndShutdown(srv)
	return nil
}
