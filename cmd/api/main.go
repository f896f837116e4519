package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/cache"
	"github.com/fhuszti/studio-ms-go/internal/config"
	"github.com/fhuszti/studio-ms-go/internal/db"
	"github.com/fhuszti/studio-ms-go/internal/handler/api"
	"github.com/fhuszti/studio-ms-go/internal/logger"
	cMiddleware "github.com/fhuszti/studio-ms-go/internal/middleware"
	"github.com/fhuszti/studio-ms-go/internal/optimiser"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/recorder"
	"github.com/fhuszti/studio-ms-go/internal/renderer"
	"github.com/fhuszti/studio-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/studio-ms-go/internal/storage"
	"github.com/fhuszti/studio-ms-go/internal/task"
	"github.com/fhuszti/studio-ms-go/internal/usecase/studio"
	"github.com/fhuszti/studio-ms-go/internal/workspace"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx, cfg.JWTPublicKey)

	strg := initStorage(ctx, cfg)
	initBuckets(ctx, strg, cfg.Buckets())

	projectRepo := mariadb.NewProjectRepository(database.DB)
	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured, caching and export manifests are disabled")
	}

	registry := workspace.NewRegistry(deviceFactory(ctx, cfg.RecordingEnabled))

	studioCfg := studio.Config{
		AssetsBucket:   cfg.AssetsBucket,
		ExportsBucket:  cfg.ExportsBucket,
		ThumbnailWidth: cfg.ThumbnailWidth,
		AssistTick:     cfg.AssistTick,
		ExportTick:     cfg.ExportTick,
	}
	fo := optimiser.NewOptimiser(optimiser.NewWebPEncoder())

	projectSvc := studio.NewProjectManager(registry, projectRepo, ca, strg, studioCfg)
	sceneSvc := studio.NewSceneEditor(registry)
	assetSvc := studio.NewAssetManager(registry, projectRepo, strg, fo, studioCfg)
	voiceoverSvc := studio.NewVoiceoverManager(registry, projectRepo, strg, studioCfg)
	recordingSvc := studio.NewRecordingController(registry, strg, studioCfg)
	settingsSvc := studio.NewSettingsEditor(registry, projectRepo, strg, fo, studioCfg)
	jobSvc := studio.NewJobRunner(registry, dispatcher, studioCfg)
	persisterSvc := studio.NewProjectPersister(registry, projectRepo, ca, strg, studioCfg)
	rendererSvc := renderer.NewHTTPRenderer(ca)

	maxBytes := cfg.MaxUploadBytes

	r.Post("/projects", api.CreateProjectHandler(projectSvc))
	r.Route("/projects/{id}", func(r chi.Router) {
		r.Use(cMiddleware.WithProjectID())

		r.Get("/", api.GetProjectHandler(rendererSvc, projectSvc))
		r.Delete("/", api.DeleteProjectHandler(projectSvc))
		r.Get("/preview", api.GetPreviewHandler(projectSvc))
		r.Put("/script", api.SetScriptHandler(projectSvc))

		r.Post("/assets/{kind}", api.UploadAssetHandler(assetSvc, maxBytes))
		r.Delete("/assets/{kind}/{index}", api.RemoveAssetHandler(assetSvc))
		r.Get("/assets/{kind}/{index}/url", api.GetAssetURLHandler(assetSvc))

		r.Post("/voiceovers", api.UploadVoiceoverHandler(voiceoverSvc, maxBytes))
		r.Delete("/voiceovers/{index}", api.RemoveVoiceoverHandler(voiceoverSvc))

		r.Post("/recording/start", api.StartRecordingHandler(recordingSvc))
		r.Post("/recording/chunks", api.AppendRecordingHandler(recordingSvc, maxBytes))
		r.Post("/recording/stop", api.StopRecordingHandler(recordingSvc))

		r.Post("/scenes", api.AddSceneHandler(sceneSvc))
		r.Post("/scenes/move", api.MoveSceneHandler(sceneSvc))
		r.Route("/scenes/{sceneID}", func(r chi.Router) {
			r.Use(cMiddleware.WithSceneID())

			r.Patch("/", api.UpdateSceneHandler(sceneSvc))
			r.Delete("/", api.RemoveSceneHandler(sceneSvc))
			r.Post("/assets", api.AttachAssetHandler(sceneSvc))
			r.Delete("/assets/{index}", api.DetachAssetHandler(sceneSvc))
		})

		r.Patch("/branding", api.UpdateBrandingHandler(settingsSvc))
		r.Put("/branding/logo", api.UploadLogoHandler(settingsSvc, maxBytes))
		r.Patch("/export-options", api.UpdateExportOptionsHandler(settingsSvc))

		r.Post("/assist", api.StartAssistHandler(jobSvc))
		r.Get("/assist", api.AssistStatusHandler(jobSvc))
		r.Post("/export", api.StartExportHandler(jobSvc))
		r.Get("/export", api.ExportStatusHandler(jobSvc))

		r.Post("/save", api.SaveProjectHandler(persisterSvc))
		r.Post("/restore", api.RestoreProjectHandler(persisterSvc))
		r.Get("/saved", api.GetSavedProjectHandler(rendererSvc, persisterSvc))
	})

	listenRouter(ctx, r, cfg, database, registry)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context, jwtKey string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cMiddleware.WithDSTAuth(jwtKey))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBuckets(ctx context.Context, strg port.Storage, buckets []string) {
	for _, b := range buckets {
		if err := strg.InitBucket(b); err != nil {
			logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", b, err)
			os.Exit(1)
		}
	}
}

// deviceFactory gives every workspace an in-memory capture device, or none
// when recording is disabled.
func deviceFactory(ctx context.Context, enabled bool) workspace.DeviceFactory {
	if !enabled {
		logger.Warn(ctx, "⚠️  Recording disabled, capture requests will answer 503")
		return nil
	}
	return func() recorder.Device { return recorder.NewBufferDevice("") }
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database, registry *workspace.Registry) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}

	// stops the running jobs of every live project
	registry.Close()
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
