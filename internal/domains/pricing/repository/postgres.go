package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/domains/pricing/model"
	"aurexis-backend/pkg/cache"
)

const (
	cacheKeyTiers   = "pricing:tiers"
	uniqueViolation = "23505"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
	ttl   time.Duration
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &postgresRepository{pool: pool, cache: c, ttl: ttl}
}

const selectTier = `
	SELECT id, name, price, note, features, recommended, sort_order, updated_at
	FROM pricing_tiers`

func scanTier(row pgx.Row) (*model.PricingTier, error) {
	var tier model.PricingTier
	var features pq.StringArray
	err := row.Scan(
		&tier.ID, &tier.Name, &tier.Price, &tier.Note,
		pq.Array(&features), &tier.Recommended, &tier.SortOrder, &tier.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	tier.Features = []string(features)
	return tier.WithAmount(), nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.PricingTier, error) {
	// Step 1: cache
	var cached []model.PricingTier
	if r.cache != nil {
		if found, err := r.cache.Get(ctx, cacheKeyTiers, &cached); err == nil && found {
			return cached, nil
		}
	}

	// Step 2: database
	tiers, err := r.listFromDB(ctx)
	if err != nil {
		return nil, model.NewListTiersError(err)
	}

	// Step 3: populate cache
	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKeyTiers, tiers, r.ttl); err != nil {
			log.Warn().Err(err).Msg("[PRICING] cache populate failed")
		}
	}
	return tiers, nil
}

func (r *postgresRepository) listFromDB(ctx context.Context) ([]model.PricingTier, error) {
	rows, err := r.pool.Query(ctx, selectTier+` ORDER BY sort_order ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tiers := make([]model.PricingTier, 0)
	for rows.Next() {
		tier, err := scanTier(rows)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, *tier)
	}
	return tiers, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*model.PricingTier, error) {
	tier, err := scanTier(r.pool.QueryRow(ctx, selectTier+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.NewTierNotFound(id)
	}
	if err != nil {
		return nil, model.NewListTiersError(err)
	}
	return tier, nil
}

func (r *postgresRepository) Create(ctx context.Context, tier *model.PricingTier) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO pricing_tiers (id, name, price, note, features, recommended, sort_order, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING updated_at`,
		tier.ID, tier.Name, tier.Price, tier.Note, pq.Array([]string(tier.Features)), tier.Recommended, tier.SortOrder,
	).Scan(&tier.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.NewTierAlreadyExists(tier.ID)
		}
		return model.NewSaveTierError(err)
	}

	r.refreshCache(ctx)
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, tier *model.PricingTier) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE pricing_tiers
		SET name = $2, price = $3, note = $4, features = $5, recommended = $6, sort_order = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		tier.ID, tier.Name, tier.Price, tier.Note, pq.Array([]string(tier.Features)), tier.Recommended, tier.SortOrder,
	).Scan(&tier.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.NewTierNotFound(tier.ID)
	}
	if err != nil {
		return model.NewSaveTierError(err)
	}

	r.refreshCache(ctx)
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pricing_tiers WHERE id = $1`, id)
	if err != nil {
		return model.NewDeleteTierError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewTierNotFound(id)
	}

	r.refreshCache(ctx)
	return nil
}

func (r *postgresRepository) NextSortOrder(ctx context.Context) (int, error) {
	var next int
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(MAX(sort_order) + 1, 0) FROM pricing_tiers`).Scan(&next)
	if err != nil {
		return 0, model.NewSaveTierError(err)
	}
	return next, nil
}

// refreshCache rewrites the cached list after a write. When the list cannot
// be reloaded or stored the key is dropped instead.
func (r *postgresRepository) refreshCache(ctx context.Context) {
	if r.cache == nil {
		return
	}

	tiers, err := r.listFromDB(ctx)
	if err == nil {
		err = r.cache.Set(ctx, cacheKeyTiers, tiers, r.ttl)
	}
	if err != nil {
		log.Warn().Err(err).Msg("[PRICING] cache refresh failed, invalidating")
		if delErr := r.cache.Delete(ctx, cacheKeyTiers); delErr != nil {
			log.Error().Err(delErr).Msg("[PRICING] cache invalidation failed")
		}
	}
}
