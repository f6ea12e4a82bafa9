package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"aurexis-backend/internal/infrastructure/database"
)

// Pool defaults are sized for a single API instance serving mostly cached
// reads. Content writes come from one admin at a time, so 10 connections
// leave room for the worker and the ops CLI on a small Postgres plan.
const (
	defaultMaxConns    = 10
	defaultMinConns    = 2
	defaultConnRetries = 5
)

// LoadDatabaseConfig reads the Postgres pool settings. Unlike the general
// config, every malformed DB_* value is reported instead of defaulted.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	var errs []error
	intVar := func(key string, def int) int {
		v, err := strconv.Atoi(getEnv(key, strconv.Itoa(def)))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s: %w", key, err))
		}
		return v
	}
	durationVar := func(key string, def time.Duration) time.Duration {
		v, err := time.ParseDuration(getEnv(key, def.String()))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s: %w", key, err))
		}
		return v
	}

	cfg := &database.DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     intVar("DB_PORT", 5432),
		Username: getEnv("DB_USER", "aurexis"),
		Password: getEnv("DB_PASSWORD", "secret"),
		DBName:   getEnv("DB_NAME", "aurexis_dev"),
		// managed Postgres offerings usually want "require"
		SSLMode: getEnv("DB_SSLMODE", "disable"),

		MaxConns: int32(intVar("DB_MAX_CONNECTIONS", defaultMaxConns)),
		MinConns: int32(intVar("DB_MIN_CONNECTIONS", defaultMinConns)),
		// recycle connections so a failover to a new primary is picked up
		MaxConnLifetime:   durationVar("DB_MAX_CONN_LIFETIME", 5*time.Minute),
		MaxConnIdleTime:   durationVar("DB_MAX_CONN_IDLE_TIME", time.Minute),
		HealthCheckPeriod: durationVar("DB_HEALTH_CHECK_PERIOD", time.Minute),

		// Postgres may still be starting when the API boots under compose
		MaxRetries:     intVar("DB_MAX_RETRIES", defaultConnRetries),
		RetryDelay:     durationVar("DB_RETRY_DELAY", time.Second),
		ConnectTimeout: durationVar("DB_CONNECT_TIMEOUT", 10*time.Second),
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)", cfg.MinConns, cfg.MaxConns)
	}
	return cfg, nil
}
