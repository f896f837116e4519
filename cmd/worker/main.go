package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/config"
	workerHandler "github.com/fhuszti/studio-ms-go/internal/handler/worker"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/storage"
	"github.com/fhuszti/studio-ms-go/internal/task"
	"github.com/fhuszti/studio-ms-go/internal/usecase/studio"
	"github.com/hibiken/asynq"

	"github.com/fhuszti/studio-ms-go/internal/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	strg := initStorage(cfg)
	initBuckets(strg, []string{cfg.ExportsBucket})

	manifestSvc := studio.NewManifestWriter(strg, cfg.ExportsBucket)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeExportManifest, func(ctx context.Context, t *asynq.Task) error {
		m, err := task.ParseExportManifestPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.ExportManifestHandler(ctx, m, manifestSvc)
	})

	runWorker(ctx, mux, cfg)
}

func initStorage(cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(context.Background(), "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBuckets(strg port.Storage, buckets []string) {
	for _, b := range buckets {
		if err := strg.InitBucket(b); err != nil {
			logger.Errorf(context.Background(), "❌  Failed to initialize bucket %q: %v", b, err)
			os.Exit(1)
		}
	}
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: 10})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	done := make(chan struct{})
	go func() {
		srv.Shutdown() // stop accepting new tasks, finish in-flight
		close(done)
	}()
	select {
	case <-done:
		logger.Info(ctx, "✅  Worker gracefully stopped")
	case <-time.After(30 * time.Second):
		logger.Warn(ctx, "⚠️  Worker shutdown timed out")
	}
}
