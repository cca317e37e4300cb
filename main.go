package main

import (
	"context"
	"log"

	"ialynk-server/internal/bootstrap"
	"ialynk-server/internal/config"
	"ialynk-server/internal/observability"
	"ialynk-server/internal/server"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx := context.Background()
	logger := observability.NewLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()
	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Fatal(ctx, "failed to shut down server", err)
	}
}
