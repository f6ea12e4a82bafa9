package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/domains/portfolio/model"
	"aurexis-backend/pkg/cache"
	"aurexis-backend/pkg/database"
)

const cachePattern = "portfolio:*"

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
	ttl   time.Duration
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &postgresRepository{pool: pool, cache: c, ttl: ttl}
}

const selectProject = `
	SELECT id, title, summary, category, tech, duration_days, link, image,
	       display_order, featured, created_at, updated_at
	FROM portfolio_projects`

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	var tech pq.StringArray
	err := row.Scan(
		&p.ID, &p.Title, &p.Summary, &p.Category, pq.Array(&tech), &p.DurationDays,
		&p.Link, &p.Image, &p.Order, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Tech = []string(tech)
	if p.Tech == nil {
		p.Tech = []string{}
	}
	return &p, nil
}

func listCacheKey(f model.ListFilter) string {
	return fmt.Sprintf("portfolio:list:%s:%t", f.Category, f.FeaturedOnly)
}

func (r *postgresRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Project, error) {
	key := listCacheKey(filter)

	// Step 1: cache
	if r.cache != nil {
		var cached []model.Project
		if found, err := r.cache.Get(ctx, key, &cached); err == nil && found {
			return cached, nil
		}
	}

	// Step 2: build query
	var (
		where []string
		args  []interface{}
	)
	if filter.Category != "" {
		args = append(args, string(filter.Category))
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.FeaturedOnly {
		where = append(where, "featured = TRUE")
	}

	query := selectProject
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY display_order ASC, created_at ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, model.NewListProjectsError(err)
	}
	defer rows.Close()

	projects := make([]model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, model.NewListProjectsError(err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewListProjectsError(err)
	}

	// Step 3: populate cache
	if r.cache != nil {
		if err := r.cache.Set(ctx, key, projects, r.ttl); err != nil {
			log.Warn().Err(err).Msg("[PORTFOLIO] cache populate failed")
		}
	}
	return projects, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx, selectProject+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.NewProjectNotFound(id.String())
	}
	if err != nil {
		return nil, model.NewListProjectsError(err)
	}
	return p, nil
}

func (r *postgresRepository) Append(ctx context.Context, fn func(tx AppendTx) error) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		// Concurrent appends must not observe the same count
		if _, err := tx.Exec(ctx, `LOCK TABLE portfolio_projects IN SHARE ROW EXCLUSIVE MODE`); err != nil {
			return err
		}
		return fn(&appendTx{tx: tx})
	})
	if err != nil {
		var pErr *model.PortfolioError
		if errors.As(err, &pErr) {
			return err
		}
		return model.NewSaveProjectError(err)
	}

	r.invalidate(ctx)
	return nil
}

type appendTx struct {
	tx pgx.Tx
}

func (a *appendTx) Count(ctx context.Context) (int, error) {
	var count int
	if err := a.tx.QueryRow(ctx, `SELECT COUNT(*) FROM portfolio_projects`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (a *appendTx) Insert(ctx context.Context, project *model.Project) error {
	return a.tx.QueryRow(ctx, `
		INSERT INTO portfolio_projects
			(id, title, summary, category, tech, duration_days, link, image, display_order, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at`,
		project.ID, project.Title, project.Summary, string(project.Category), pq.Array([]string(project.Tech)),
		project.DurationDays, project.Link, project.Image, project.Order, project.Featured,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
}

func (r *postgresRepository) Update(ctx context.Context, project *model.Project) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE portfolio_projects
		SET title = $2, summary = $3, category = $4, tech = $5, duration_days = $6,
		    link = $7, image = $8, display_order = $9, featured = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`,
		project.ID, project.Title, project.Summary, string(project.Category), pq.Array([]string(project.Tech)),
		project.DurationDays, project.Link, project.Image, project.Order, project.Featured,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.NewProjectNotFound(project.ID.String())
	}
	if err != nil {
		return model.NewSaveProjectError(err)
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM portfolio_projects WHERE id = $1`, id)
	if err != nil {
		return model.NewDeleteProjectError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewProjectNotFound(id.String())
	}

	r.invalidate(ctx)
	return nil
}

// invalidate drops every cached list variant
func (r *postgresRepository) invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.DeletePattern(ctx, cachePattern); err != nil {
		log.Error().Err(err).Msg("[PORTFOLIO] cache invalidation failed")
	}
}
