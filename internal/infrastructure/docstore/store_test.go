package docstore

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurexis-backend/pkg/cache"
)

// ===== fakes =====

type fakeRow struct {
	body []byte
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.body
	return nil
}

type fakeDB struct {
	docs    map[string][]byte
	reads   int
	execErr error
}

func newFakeDB() *fakeDB {
	return &fakeDB{docs: map[string][]byte{}}
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	f.reads++
	body, ok := f.docs[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{body: body}
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	key := args[0].(string)
	if strings.Contains(sql, "DELETE") {
		delete(f.docs, key)
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	f.docs[key] = args[1].([]byte)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

type failingSetCache struct {
	*cache.MemoryCache
}

func (f failingSetCache) Set(context.Context, string, interface{}, time.Duration) error {
	return errors.New("redis down")
}

type doc struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// ===== tests =====

func TestStore_GetMissing(t *testing.T) {
	store := NewPostgresStore(newFakeDB(), cache.NewMemoryCache(), time.Minute)

	var out doc
	found, err := store.Get(context.Background(), "homepage_settings", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_PutThenGetServesCache(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	mem := cache.NewMemoryCache()
	store := NewPostgresStore(db, mem, time.Minute)

	require.NoError(t, store.Put(ctx, "k", doc{Title: "", Items: []string{"a"}}))

	var out doc
	found, err := store.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, doc{Title: "", Items: []string{"a"}}, out)
	assert.Equal(t, 0, db.reads, "write-through cache must answer the read")
}

func TestStore_SecondPutReplacesCachedValue(t *testing.T) {
	ctx := context.Background()
	store := NewPostgresStore(newFakeDB(), cache.NewMemoryCache(), time.Minute)

	require.NoError(t, store.Put(ctx, "k", doc{Title: "first"}))
	require.NoError(t, store.Put(ctx, "k", doc{Title: "second"}))

	var out doc
	_, err := store.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.Equal(t, "second", out.Title)
}

func TestStore_CacheSetFailureInvalidates(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	mem := cache.NewMemoryCache()

	// stale entry from an earlier save
	require.NoError(t, mem.Set(ctx, cacheKey("k"), doc{Title: "stale"}, 0))

	store := NewPostgresStore(db, failingSetCache{mem}, time.Minute)
	require.NoError(t, store.Put(ctx, "k", doc{Title: "fresh"}))
	assert.Equal(t, 0, mem.Len())

	var out doc
	found, err := store.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "fresh", out.Title)
	assert.Equal(t, 1, db.reads)
}

func TestStore_PutErrorLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	db.execErr = errors.New("connection reset")
	mem := cache.NewMemoryCache()
	store := NewPostgresStore(db, mem, time.Minute)

	err := store.Put(ctx, "k", doc{Title: "x"})
	require.Error(t, err)
	assert.Equal(t, 0, mem.Len())
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewPostgresStore(newFakeDB(), cache.NewMemoryCache(), time.Minute)

	require.NoError(t, store.Put(ctx, "k", doc{Title: "x"}))
	require.NoError(t, store.Delete(ctx, "k"))

	var out doc
	found, err := store.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_NilCache(t *testing.T) {
	ctx := context.Background()
	store := NewPostgresStore(newFakeDB(), nil, 0)

	require.NoError(t, store.Put(ctx, "k", doc{Title: "x"}))
	var out doc
	found, err := store.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "x", out.Title)
}
