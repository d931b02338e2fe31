// Command statusd serves the RisqMap status inference API: pump station
// status resolution and river gauge flood-stage assessment.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/itsRabb/risqmap-status/internal/adapter/http"
	kafkaadapter "github.com/itsRabb/risqmap-status/internal/adapter/kafka"
	"github.com/itsRabb/risqmap-status/internal/adapter/openmeteo"
	"github.com/itsRabb/risqmap-status/internal/adapter/postgres"
	"github.com/itsRabb/risqmap-status/internal/catalog"
	"github.com/itsRabb/risqmap-status/internal/config"
	"github.com/itsRabb/risqmap-status/internal/gauges"
	"github.com/itsRabb/risqmap-status/internal/observability"
	"github.com/itsRabb/risqmap-status/internal/resolver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Station/gauge store is optional: without DATABASE_URL the catalog
	// serves its fallback list and the gauge endpoint returns no data.
	var pg *postgres.Store
	if cfg.DatabaseURL != "" {
		pg, err = postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			// A dead database at boot is not fatal either; the catalog
			// falls back the same way it would on a mid-flight outage.
			logger.Warn("station store unavailable, continuing with fallback catalog", "error", err)
			pg = nil
		}
	} else {
		logger.Info("no DATABASE_URL configured, catalog will serve the fallback list")
	}
	var stationStore catalog.Store
	var gaugeStore gauges.Store
	if pg != nil {
		stationStore = pg
		gaugeStore = pg
		defer pg.Close()
	}

	weather := openmeteo.NewClient(cfg.WeatherBaseURL, cfg.WeatherTimeout, metrics, logger)

	cat := catalog.New(stationStore, nil, logger, metrics)
	pipeline := resolver.New(cat, resolver.DefaultRegistry(), weather, cfg.CityTimeout, logger, metrics)

	var publisher gauges.AlertPublisher
	if cfg.KafkaEnabled {
		kafkaPublisher := kafkaadapter.NewPublisher(cfg, logger)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Error("kafka publisher close error", "error", err)
			}
		}()
		publisher = kafkaPublisher
		logger.Info("kafka alert publishing enabled", "topic", cfg.KafkaAlertTopic)
	} else {
		logger.Info("kafka alert publishing disabled")
	}

	gaugeService := gauges.New(gaugeStore, nil, publisher, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, pipeline, gaugeService, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
