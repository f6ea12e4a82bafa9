package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/config"
	infraCache "aurexis-backend/internal/infrastructure/cache"
	"aurexis-backend/internal/infrastructure/database"
	"aurexis-backend/pkg/cache"
)

// connectDatabase opens the pool and applies pending migrations, returning
// the names of the ones applied by this call
func connectDatabase(ctx context.Context) (*database.PostgresDB, []string, error) {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	applied, err := db.Migrate(ctx)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return db, applied, nil
}

// connectCache returns the API's cache so seeded values replace stale
// entries, or an in-memory cache when Redis is off or unreachable.
func connectCache(ctx context.Context, cfg config.RedisConfig) (cache.Cache, func()) {
	if !cfg.Enabled {
		return cache.NewMemoryCache(), func() {}
	}

	rc := infraCache.NewRedisCache(cfg.Host, cfg.Password, cfg.DB)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rc.Connect(pingCtx); err != nil {
		log.Warn().Err(err).Msg("Redis unreachable, cached content may be stale until it expires")
		_ = rc.Close()
		return cache.NewMemoryCache(), func() {}
	}
	return rc, func() { _ = rc.Close() }
}
