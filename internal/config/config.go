package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds the whole application configuration.
// Populated from environment variables (.env is loaded by godotenv in main).
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Storage StorageConfig
	Queue   QueueConfig
	Content ContentConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	CORSOrigins []string
}

// RedisConfig configures the content cache. Enabled=false swaps Redis for
// an in-process cache.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret    string
	Issuer    string
	AccessTTL time.Duration
}

// AdminConfig holds the single admin console account.
// PasswordHash is a bcrypt hash (see `aurexisctl hash-password`).
type AdminConfig struct {
	Email        string
	PasswordHash string
}

// StorageConfig describes the S3-compatible bucket used for uploads.
// An empty Bucket disables uploads: the upload endpoint answers with a
// configuration error instead of calling the store.
type StorageConfig struct {
	Endpoint      string // localhost:9000
	AccessKey     string
	SecretKey     string
	Bucket        string // STORAGE_BUCKET
	UseSSL        bool
	PublicBaseURL string // defaults to http(s)://<endpoint>
	MaxUploadMB   int
}

type QueueConfig struct {
	Enabled     bool
	RedisAddr   string
	Concurrency int
}

type ContentConfig struct {
	CacheTTL time.Duration
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Aurexis Content API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			CORSOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", true),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:    getEnv("JWT_SECRET", defaultJWTSecret),
			Issuer:    getEnv("JWT_ISSUER", "aurexis"),
			AccessTTL: getEnvDuration("JWT_ACCESS_TTL", 8*time.Hour),
		},
		Admin: AdminConfig{
			Email:        strings.ToLower(getEnv("ADMIN_EMAIL", "admin@aurexis.solutions")),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Storage: StorageConfig{
			Endpoint:      getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKey:     getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretKey:     getEnv("STORAGE_SECRET_KEY", "minioadmin"),
			Bucket:        strings.TrimSpace(os.Getenv("STORAGE_BUCKET")),
			UseSSL:        getEnvBool("STORAGE_USE_SSL", false),
			PublicBaseURL: getEnv("STORAGE_PUBLIC_URL", ""),
			MaxUploadMB:   getEnvInt("STORAGE_MAX_UPLOAD_MB", 10),
		},
		Queue: QueueConfig{
			Enabled:     getEnvBool("QUEUE_ENABLED", false),
			RedisAddr:   getEnv("QUEUE_REDIS_ADDR", getEnv("REDIS_HOST", "localhost:6379")),
			Concurrency: getEnvInt("QUEUE_CONCURRENCY", 4),
		},
		Content: ContentConfig{
			CacheTTL: getEnvDuration("CONTENT_CACHE_TTL", 30*time.Minute),
		},
	}

	if cfg.Storage.PublicBaseURL == "" {
		scheme := "http"
		if cfg.Storage.UseSSL {
			scheme = "https"
		}
		cfg.Storage.PublicBaseURL = fmt.Sprintf("%s://%s", scheme, cfg.Storage.Endpoint)
	}
	cfg.Storage.PublicBaseURL = strings.TrimRight(cfg.Storage.PublicBaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that must not reach production
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Admin.PasswordHash == "" {
			return fmt.Errorf("ADMIN_PASSWORD_HASH must be set in production")
		}
	}
	if c.Storage.MaxUploadMB <= 0 {
		return fmt.Errorf("STORAGE_MAX_UPLOAD_MB must be positive")
	}
	return nil
}

// UploadsEnabled reports whether a bucket is configured
func (s StorageConfig) UploadsEnabled() bool {
	return s.Bucket != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if value := strings.TrimSpace(part); value != "" {
			items = append(items, value)
		}
	}
	return items
}
