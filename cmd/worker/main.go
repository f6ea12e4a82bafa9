package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/infrastructure/storage"
	"aurexis-backend/pkg/logger"
)

func main() {
	envErr := godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))
	if envErr != nil {
		log.Warn().Msg("No .env file found, using system environment variables")
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("[Config] failed to load")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	objects, err := storage.NewMinIOStorage(ctx, cfg.Storage)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("[Storage] failed to initialize")
	}

	maxBytes := int64(cfg.Storage.MaxUploadMB) * 1024 * 1024
	handlers := initializeHandlers(objects, maxBytes)

	if err := startServices(cfg.Queue.RedisAddr, objects); err != nil {
		log.Fatal().Err(err).Msg("[Startup] health check failed")
	}

	srv := setupAsynqServer(cfg.Queue, handlers)

	waitForShutdown(srv)
}

func waitForShutdown(srv *asynqServer) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("[Shutdown] Gracefully stopping...")
	srv.Shutdown()
}
