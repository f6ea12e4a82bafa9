package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDatabaseConfig_Defaults(t *testing.T) {
	for _, key := range []string{"DB_PORT", "DB_NAME", "DB_MAX_CONNECTIONS", "DB_MIN_CONNECTIONS", "DB_MAX_CONN_LIFETIME", "DB_CONNECT_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "aurexis_dev", cfg.DBName)
	assert.Equal(t, int32(defaultMaxConns), cfg.MaxConns)
	assert.Equal(t, int32(defaultMinConns), cfg.MinConns)
	assert.Equal(t, 5*time.Minute, cfg.MaxConnLifetime)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
}

func TestLoadDatabaseConfig_ReportsEveryBadValue(t *testing.T) {
	t.Setenv("DB_PORT", "five")
	t.Setenv("DB_RETRY_DELAY", "soon")

	_, err := LoadDatabaseConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
	assert.Contains(t, err.Error(), "DB_RETRY_DELAY")
}

func TestLoadDatabaseConfig_MinAboveMax(t *testing.T) {
	t.Setenv("DB_MAX_CONNECTIONS", "4")
	t.Setenv("DB_MIN_CONNECTIONS", "8")

	_, err := LoadDatabaseConfig()
	assert.ErrorContains(t, err, "DB_MIN_CONNECTIONS")
}
