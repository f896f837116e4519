package main

import (
	"context"
	"os"
	"strconv"

	"github.com/fhuszti/studio-ms-go/internal/config"
	"github.com/fhuszti/studio-ms-go/internal/db"
	"github.com/fhuszti/studio-ms-go/internal/migration"
	_ "github.com/go-sql-driver/mysql"

	"github.com/fhuszti/studio-ms-go/internal/logger"
)

// Usage: migrate [up | down N]. Without arguments every pending migration
// is applied.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	database, err := initDb(cfg)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	args := os.Args[1:]
	if len(args) > 0 && args[0] == "down" {
		steps := 1
		if len(args) > 1 {
			steps, err = strconv.Atoi(args[1])
			if err != nil || steps <= 0 {
				logger.Errorf(ctx, "❌  Invalid step count %q", args[1])
				os.Exit(1)
			}
		}
		if err := migration.MigrateDown(database.DB, steps); err != nil {
			logger.Errorf(ctx, "❌  Migration down failed: %v", err)
			os.Exit(1)
		}
		logger.Infof(ctx, "✅  Rolled back %d migration(s)", steps)
		return
	}

	if err := migration.MigrateUp(database.DB); err != nil {
		logger.Errorf(ctx, "❌  Migration up failed: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "✅  Migrations applied successfully")
}

func initDb(cfg *config.Settings) (*db.Database, error) {
	database, err := db.New(cfg.MariaDBDSN+"&multiStatements=true", cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		return nil, err
	}

	return database, nil
}
