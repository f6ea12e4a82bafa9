// Package docstore keeps singleton content records as JSONB documents in
// site_documents, fronted by the shared cache.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"aurexis-backend/pkg/cache"
)

// Store reads and writes whole JSON documents by key
type Store interface {
	// Get decodes the document at key into dest. found=false when absent.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Put replaces the document at key
	Put(ctx context.Context, key string, value interface{}) error
	// Delete removes the document at key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

// DB is the subset of pgxpool.Pool the store needs
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type postgresStore struct {
	db    DB
	cache cache.Cache
	ttl   time.Duration
}

// NewPostgresStore returns a write-through cached document store.
// cache may be nil.
func NewPostgresStore(db DB, c cache.Cache, ttl time.Duration) Store {
	return &postgresStore{db: db, cache: c, ttl: ttl}
}

func cacheKey(key string) string {
	return "doc:" + key
}

func (s *postgresStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	// Step 1: cache
	if s.cache != nil {
		found, err := s.cache.Get(ctx, cacheKey(key), dest)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("[DOCSTORE] cache read failed, falling back to postgres")
		} else if found {
			return true, nil
		}
	}

	// Step 2: postgres
	var body []byte
	err := s.db.QueryRow(ctx, `SELECT body FROM site_documents WHERE key = $1`, key).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("select document %s: %w", key, err)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return false, fmt.Errorf("decode document %s: %w", key, err)
	}

	// Step 3: populate cache
	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey(key), dest, s.ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("[DOCSTORE] cache populate failed")
		}
	}

	return true, nil
}

func (s *postgresStore) Put(ctx context.Context, key string, value interface{}) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", key, err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO site_documents (key, body, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()`,
		key, body,
	)
	if err != nil {
		return fmt.Errorf("upsert document %s: %w", key, err)
	}

	s.refresh(ctx, key, value)
	return nil
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM site_documents WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete document %s: %w", key, err)
	}
	s.invalidate(ctx, key)
	return nil
}

// refresh overwrites the cached copy; a failed write drops the key so the
// next read goes to postgres.
func (s *postgresStore) refresh(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(key), value, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[DOCSTORE] cache refresh failed, invalidating")
		s.invalidate(ctx, key)
	}
}

func (s *postgresStore) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKey(key)); err != nil {
		log.Error().Err(err).Str("key", key).Msg("[DOCSTORE] cache invalidation failed")
	}
}
