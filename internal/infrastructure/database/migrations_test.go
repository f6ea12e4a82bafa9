package database

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_AreVersionedGooseScripts(t *testing.T) {
	fsys, err := migrationsFS()
	require.NoError(t, err)

	names, err := fs.Glob(fsys, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	seen := map[int64]string{}
	for _, name := range names {
		version, err := goose.NumericComponent(name)
		require.NoError(t, err, name)
		assert.NotContains(t, seen, version, "duplicate version in %s", name)
		seen[version] = name

		body, err := fs.ReadFile(fsys, name)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(body), "-- +goose Up"), name)
	}
}

func TestMigrate_RequiresPool(t *testing.T) {
	db := NewPostgresDB(&DBConfig{})
	_, err := db.Migrate(context.Background())
	assert.Error(t, err)
}
