package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"walletsync/internal/config"
	"walletsync/internal/handler"
	"walletsync/internal/hooks"
	"walletsync/internal/marketplace"
	"walletsync/internal/reconciler"
	"walletsync/internal/server"
	"walletsync/internal/storage"
	"walletsync/internal/transfer"
	"walletsync/internal/wallet"
	"walletsync/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	store := storage.NewMemoryStore()
	log.Info(ctx, "Store initialized")

	registry := hooks.NewRegistry()

	marketplaceClient := marketplace.NewClient(cfg.Marketplace)
	walletClient := wallet.NewClient(cfg.Wallet)
	transferClient := transfer.NewLocalClient()
	archive := transfer.NewZipExtractor()
	log.Info(ctx, "Clients initialized")

	identity := reconciler.NewIdentitySynchronizer(store, walletClient, registry, log)
	documents := reconciler.NewDocumentRelay(
		marketplaceClient,
		store,
		transferClient,
		archive,
		log,
		cfg.Transfer.BundlePath,
		cfg.Transfer.ExtractDir,
		cfg.Transfer.RemoteRoot,
		cfg.Transfer.UploadConcurrency,
	)
	bank := reconciler.NewBankInfoReconciler(walletClient, registry, log)

	orchestrator := reconciler.NewBatchOrchestrator(
		marketplaceClient,
		walletClient,
		store,
		store,
		identity,
		documents,
		bank,
		registry,
		log,
	)
	log.Info(ctx, "Reconciler initialized")

	runHandler := handler.NewRunHandler(orchestrator, store, cfg.Batch.Lookback, log)
	healthHandler := handler.NewHealthHandler()
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, runHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	schedulerCtx, stopScheduler := context.WithCancel(ctx)
	if cfg.Batch.Interval > 0 {
		go runScheduler(schedulerCtx, orchestrator, cfg.Batch.Interval, cfg.Batch.Lookback, log)
		log.Info(ctx, "Scheduler started",
			"interval", cfg.Batch.Interval.String(),
		)
	}

	log.Info(ctx, "Application started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	stopScheduler()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}

func runScheduler(ctx context.Context, orchestrator *reconciler.BatchOrchestrator, interval, lookback time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info(ctx, "Scheduler stopped")
			return
		case <-ticker.C:
			runID := uuid.New().String()
			since := time.Now().Add(-lookback)
			orchestrator.Run(logger.WithRunID(ctx, runID), runID, since)
		}
	}
}
