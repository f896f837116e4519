package main

import (
	"context"
	"log"

	"github.com/fhuszti/studio-ms-go/internal/config"
	"github.com/fhuszti/studio-ms-go/internal/db"
	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/studio-ms-go/internal/storage"
	"github.com/fhuszti/studio-ms-go/internal/task"
	"github.com/fhuszti/studio-ms-go/internal/usecase/studio"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌  Configuration error: %v", err)
	}
	logger.Init()

	database := initDb(cfg)
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("DB close error: %v", err)
		}
	}()

	strg, err := storage.NewStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
	if err != nil {
		log.Fatalf("❌  Failed to initialize MinIO client: %v", err)
	}

	dispatcher := initDispatcher(cfg)
	defer func() { _ = dispatcher.Close() }()
	repo := mariadb.NewProjectRepository(database.DB)

	backlog := studio.NewManifestBacklog(repo, strg, dispatcher, cfg.ExportsBucket)
	if err := backlog.PublishBacklog(context.Background()); err != nil {
		log.Fatalf("❌  Manifest backlog failed: %v", err)
	}
	log.Println("✅  Manifest backlog completed")
}

func initDb(cfg *config.Settings) *db.Database {
	log.Println("initialising database...")
	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		log.Fatalf("❌  Failed to connect to db: %v", err)
	}
	return database
}

type closableDispatcher interface {
	port.TaskDispatcher
	Close() error
}

func initDispatcher(cfg *config.Settings) closableDispatcher {
	if cfg.RedisAddr == "" {
		log.Fatalf("❌  Redis not configured: this command requires a running Redis instance")
	}
	return task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
}
