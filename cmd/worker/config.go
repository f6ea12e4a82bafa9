package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/config"
)

// loadConfig reads the shared config and checks what the worker needs
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if !cfg.Storage.UploadsEnabled() {
		return nil, fmt.Errorf("STORAGE_BUCKET must be set to run the media worker")
	}
	if cfg.Queue.Concurrency <= 0 {
		cfg.Queue.Concurrency = 1
	}

	log.Info().
		Str("redis", cfg.Queue.RedisAddr).
		Str("bucket", cfg.Storage.Bucket).
		Int("concurrency", cfg.Queue.Concurrency).
		Msg("[Config] worker configuration loaded")

	return cfg, nil
}
