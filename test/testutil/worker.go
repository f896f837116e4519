package testutil

import (
	"context"

	workerHandler "github.com/fhuszti/studio-ms-go/internal/handler/worker"
	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/task"
	"github.com/fhuszti/studio-ms-go/internal/usecase/studio"
	"github.com/hibiken/asynq"
)

// StartWorker runs an asynq worker storing export manifests in bucket.
// It returns a function to gracefully shut down the worker.
func StartWorker(strg port.Storage, redisAddr, bucket string) func() {
	manifestSvc := studio.NewManifestWriter(strg, bucket)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeExportManifest, func(ctx context.Context, t *asynq.Task) error {
		m, err := task.ParseExportManifestPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.ExportManifestHandler(ctx, m, manifestSvc)
	})

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{Concurrency: 2})
	if err := srv.Start(mux); err != nil {
		logger.Errorf(context.Background(), "❌  Test worker failed to start: %v", err)
	}

	return srv.Shutdown
}
