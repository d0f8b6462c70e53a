package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"library-backend/internal/config"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/logger"
)

// migrate applies the embedded schema to DB_* and exits
func main() {
	logger.Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	if err := run(); err != nil {
		logger.Fatal("migration failed", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	migrator, err := database.OpenMigrator(ctx, cfg.DBConfig())
	if err != nil {
		return err
	}
	defer migrator.Close()

	applied, err := migrator.Up(ctx)
	if err != nil {
		return err
	}

	logger.Info("migrations complete", map[string]interface{}{"applied": applied})
	return nil
}
