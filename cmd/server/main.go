package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/winepair/backend/config"
	"github.com/winepair/backend/internal/catalog"
	httpDelivery "github.com/winepair/backend/internal/delivery/http"
	"github.com/winepair/backend/internal/infrastructure/catalogsrc"
	"github.com/winepair/backend/internal/infrastructure/memory"
	"github.com/winepair/backend/internal/logging"
	"github.com/winepair/backend/internal/metrics"
	"github.com/winepair/backend/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("catalog_source", cfg.Catalog.Source).
		Msg("Starting WinePair Backend v1.0.0")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load reference catalog
	source, err := catalogsrc.NewSource(cfg.Catalog, cfg.Server.Environment == "development")
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid catalog source")
	}
	pairingCatalog, err := catalog.Load(ctx, source)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}

	wines, foods := pairingCatalog.Size()
	keywords := len(pairingCatalog.Keywords())
	metrics.RecordCatalogSize(wines, foods, keywords)
	logging.Info().Int("wines", wines).Int("foods", foods).Int("keywords", keywords).Msg("Catalog loaded")

	// Initialize usecase layer
	pairingService := usecase.NewPairingService(pairingCatalog, usecase.EngineConfig{
		RankByScore:        cfg.Matching.RankByScore,
		EnableDebugLogging: cfg.Matching.Debug,
	})
	expertService := usecase.NewExpertPairingService(memory.NewPairingStore(catalog.BuiltinExpertPairings()))
	feedbackService := usecase.NewFeedbackService(memory.NewFeedbackStore())

	logging.Info().
		Bool("rank_by_score", cfg.Matching.RankByScore).
		Bool("debug", cfg.Matching.Debug).
		Msg("Pairing engine configured")

	handler := httpDelivery.NewHandler(pairingService, expertService, feedbackService)
	router := httpDelivery.SetupRouter(cfg, handler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil {
			logging.Error().Err(err).Msg("Failed to start server")
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}
	logging.Info().Msg("Server stopped")
}
