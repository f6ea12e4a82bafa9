package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/config"
	"aurexis-backend/internal/defaults"
	infraCache "aurexis-backend/internal/infrastructure/cache"
	"aurexis-backend/internal/infrastructure/database"
	"aurexis-backend/internal/infrastructure/docstore"
	"aurexis-backend/internal/infrastructure/queue"
	"aurexis-backend/internal/infrastructure/storage"
	"aurexis-backend/pkg/cache"
	"aurexis-backend/pkg/jwt"

	adminHandler "aurexis-backend/internal/domains/admin/handler"
	adminService "aurexis-backend/internal/domains/admin/service"
	mediaHandler "aurexis-backend/internal/domains/media/handler"
	mediaService "aurexis-backend/internal/domains/media/service"
	portfolioHandler "aurexis-backend/internal/domains/portfolio/handler"
	portfolioRepo "aurexis-backend/internal/domains/portfolio/repository"
	portfolioService "aurexis-backend/internal/domains/portfolio/service"
	pricingHandler "aurexis-backend/internal/domains/pricing/handler"
	pricingRepo "aurexis-backend/internal/domains/pricing/repository"
	pricingService "aurexis-backend/internal/domains/pricing/service"
	serviceContentHandler "aurexis-backend/internal/domains/servicecontent/handler"
	serviceContentRepo "aurexis-backend/internal/domains/servicecontent/repository"
	serviceContentService "aurexis-backend/internal/domains/servicecontent/service"
	siteContentHandler "aurexis-backend/internal/domains/sitecontent/handler"
	siteContentRepo "aurexis-backend/internal/domains/sitecontent/repository"
	siteContentService "aurexis-backend/internal/domains/sitecontent/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the API process.
// Built once at startup in layer order: config, infrastructure,
// repositories, services, handlers.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Documents  docstore.Store
	Storage    *storage.MinIOStorage // nil when STORAGE_BUCKET is empty
	Queue      *queue.Client         // nil when QUEUE_ENABLED=false
	JWTManager *jwt.Manager
	Catalog    *defaults.Catalog

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	SiteContentRepo    siteContentRepo.RepositoryInterface
	ServiceContentRepo serviceContentRepo.RepositoryInterface
	PricingRepo        pricingRepo.RepositoryInterface
	PortfolioRepo      portfolioRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================
	SiteContentService    siteContentService.ServiceInterface
	ServiceContentService serviceContentService.ServiceInterface
	PricingService        pricingService.ServiceInterface
	PortfolioService      portfolioService.ServiceInterface
	MediaService          mediaService.ServiceInterface
	AuthService           adminService.AuthService

	// ========================================
	// HANDLER LAYER
	// ========================================
	SiteContentHandler    *siteContentHandler.SiteContentHandler
	ServiceContentHandler *serviceContentHandler.ServiceContentHandler
	PricingHandler        *pricingHandler.PricingHandler
	PortfolioHandler      *portfolioHandler.PortfolioHandler
	MediaHandler          *mediaHandler.MediaHandler
	AuthHandler           *adminHandler.AuthHandler
}

// NewContainer builds the whole dependency graph
func NewContainer() (*Container, error) {
	log.Info().Msg("Initializing DI container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("env", cfg.App.Environment).Msg("Config loaded")

	catalog, err := defaults.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load default content: %w", err)
	}
	c.Catalog = catalog

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	if err := c.initDatabase(); err != nil {
		return nil, err
	}

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	c.initCache()
	c.Documents = docstore.NewPostgresStore(c.DB.Pool, c.Cache, cfg.Content.CacheTTL)

	// ========================================
	// STEP 4: STORAGE, QUEUE, JWT
	// ========================================
	if err := c.initStorage(); err != nil {
		return nil, err
	}

	if cfg.Queue.Enabled {
		c.Queue = queue.NewClient(cfg.Queue.RedisAddr)
		log.Info().Str("addr", cfg.Queue.RedisAddr).Msg("Queue client ready")
	}

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTTL)

	// ========================================
	// STEP 5: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("DI container initialized")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initDatabase() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	applied, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	if len(applied) > 0 {
		log.Info().Strs("migrations", applied).Msg("Migrations applied")
	}

	c.DB = db
	log.Info().Msg("Database connected")
	return nil
}

// initCache picks Redis, falling back to the in-process cache when Redis is
// disabled or unreachable
func (c *Container) initCache() {
	if !c.Config.Redis.Enabled {
		c.Cache = cache.NewMemoryCache()
		log.Info().Msg("Redis disabled, using in-memory cache")
		return
	}

	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rc.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed (non-critical), using in-memory cache")
		_ = rc.Close()
		c.Cache = cache.NewMemoryCache()
		return
	}

	c.Cache = rc
	log.Info().Str("host", c.Config.Redis.Host).Msg("Redis connected")
}

func (c *Container) initStorage() error {
	if !c.Config.Storage.UploadsEnabled() {
		log.Warn().Msg("STORAGE_BUCKET is empty, uploads are disabled")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	s, err := storage.NewMinIOStorage(ctx, c.Config.Storage)
	if err != nil {
		return fmt.Errorf("failed to init object storage: %w", err)
	}

	c.Storage = s
	log.Info().Str("bucket", s.Bucket()).Msg("Object storage ready")
	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	ttl := c.Config.Content.CacheTTL

	c.SiteContentRepo = siteContentRepo.NewDocumentRepository(c.Documents)
	c.ServiceContentRepo = serviceContentRepo.NewDocumentRepository(c.Documents)
	c.PricingRepo = pricingRepo.NewPostgresRepository(pool, c.Cache, ttl)
	c.PortfolioRepo = portfolioRepo.NewPostgresRepository(pool, c.Cache, ttl)
}

func (c *Container) initServices() {
	c.SiteContentService = siteContentService.NewSiteContentService(c.SiteContentRepo, c.Catalog)
	c.ServiceContentService = serviceContentService.NewServiceContentService(c.ServiceContentRepo, c.Catalog)
	c.PricingService = pricingService.NewPricingService(c.PricingRepo, c.Catalog)
	c.PortfolioService = portfolioService.NewPortfolioService(c.PortfolioRepo)
	c.AuthService = adminService.NewAuthService(c.Config.Admin, c.JWTManager)

	// typed nils must not leak into the interfaces
	var objects mediaService.ObjectStorage
	if c.Storage != nil {
		objects = c.Storage
	}
	var thumbnails mediaService.ThumbnailEnqueuer
	if c.Queue != nil {
		thumbnails = c.Queue
	}
	c.MediaService = mediaService.NewMediaService(c.Config.Storage, objects, thumbnails)
}

func (c *Container) initHandlers() {
	c.SiteContentHandler = siteContentHandler.NewSiteContentHandler(c.SiteContentService)
	c.ServiceContentHandler = serviceContentHandler.NewServiceContentHandler(c.ServiceContentService)
	c.PricingHandler = pricingHandler.NewPricingHandler(c.PricingService)
	c.PortfolioHandler = portfolioHandler.NewPortfolioHandler(c.PortfolioService)
	c.MediaHandler = mediaHandler.NewMediaHandler(c.MediaService)
	c.AuthHandler = adminHandler.NewAuthHandler(c.AuthService)
}

// Cleanup releases connections during graceful shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources...")

	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close queue client")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		}
	}

	log.Info().Msg("Container cleanup completed")
}
