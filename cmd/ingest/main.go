package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"stock_ingest/internal/app/di"
	"stock_ingest/internal/platform/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// SIGINT/SIGTERM で残りの銘柄を処理せずに終了する
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := di.NewStockStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	rdb := di.NewRedis(ctx, cfg.Redis)
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	uc, err := di.NewIngestUsecase(cfg, store, rdb)
	if err != nil {
		slog.Error("failed to build ingest pipeline", "error", err)
		os.Exit(1)
	}

	summary, err := uc.Run(ctx)
	if err != nil && ctx.Err() == nil {
		slog.Error("ingest aborted", "error", err)
		os.Exit(1)
	}
	slog.Info("ingest finished",
		"attempted", summary.Attempted,
		"succeeded", len(summary.Succeeded),
		"failed", len(summary.Failed),
		"interrupted", ctx.Err() != nil,
	)
}
