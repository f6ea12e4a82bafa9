package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func migrationsFS() (fs.FS, error) {
	return fs.Sub(migrationFiles, "migrations")
}

// Migrate applies every pending embedded migration and returns the applied
// file names. Versions are tracked by goose in goose_db_version.
func (db *PostgresDB) Migrate(ctx context.Context) ([]string, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	fsys, err := migrationsFS()
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(db.Pool)
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, fsys)
	if err != nil {
		return nil, fmt.Errorf("init migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	applied := make([]string, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Path)
		log.Info().
			Str("migration", r.Source.Path).
			Dur("took", r.Duration).
			Msg("[DATABASE] migration applied")
	}
	return applied, nil
}
