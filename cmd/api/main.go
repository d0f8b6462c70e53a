package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"library-backend/internal/config"
	"library-backend/pkg/logger"
)

func main() {
	// bootstrap logger until config is known
	logger.Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", err)
	}

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("starting", map[string]interface{}{
		"app":         cfg.App.Name,
		"environment": cfg.App.Environment,
		"version":     cfg.App.Version,
	})

	if err := Serve(cfg); err != nil {
		logger.Fatal("server stopped with error", err)
	}
}
