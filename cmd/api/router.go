package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aurexis-backend/internal/shared/middleware"
	"aurexis-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.CORSOrigins),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupPublicRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// PUBLIC ROUTES (site renderer)
// ========================================
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	public := v1.Group("/public")
	{
		public.GET("/settings", c.SiteContentHandler.GetSettings)
		public.GET("/social-links", c.SiteContentHandler.GetSocialLinks)
		public.GET("/homepage", c.SiteContentHandler.GetHomepageContent)

		public.GET("/services", c.ServiceContentHandler.ListServices)
		public.GET("/services/:id", c.ServiceContentHandler.GetPublicService)

		public.GET("/pricing", c.PricingHandler.ListTiers)

		public.GET("/portfolio", c.PortfolioHandler.ListProjects)
	}
}

// ========================================
// ADMIN ROUTES (admin console)
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/admin/login", c.AuthHandler.Login)

	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.GET("/me", c.AuthHandler.Me)

		// Site settings & homepage
		admin.GET("/settings", c.SiteContentHandler.GetSettings)
		admin.PUT("/settings", c.SiteContentHandler.UpdateSettings)
		admin.GET("/social-links", c.SiteContentHandler.GetSocialLinks)
		admin.PUT("/social-links", c.SiteContentHandler.UpdateSocialLinks)
		admin.GET("/homepage", c.SiteContentHandler.GetHomepageContent)
		admin.PUT("/homepage", c.SiteContentHandler.UpdateHomepageContent)
		admin.POST("/homepage/problems", c.SiteContentHandler.AddProblem)
		admin.PUT("/homepage/problems/:index", c.SiteContentHandler.UpdateProblem)
		admin.DELETE("/homepage/problems/:index", c.SiteContentHandler.RemoveProblem)

		// Service pages
		admin.GET("/services", c.ServiceContentHandler.ListServices)
		admin.GET("/services/:id", c.ServiceContentHandler.GetServiceContent)
		admin.PUT("/services/:id", c.ServiceContentHandler.UpdateServiceContent)
		admin.DELETE("/services/:id", c.ServiceContentHandler.ResetServiceContent)

		// Pricing
		admin.GET("/pricing", c.PricingHandler.ListTiers)
		admin.POST("/pricing", c.PricingHandler.CreateTier)
		admin.GET("/pricing/:id", c.PricingHandler.GetTier)
		admin.PUT("/pricing/:id", c.PricingHandler.UpdateTier)
		admin.DELETE("/pricing/:id", c.PricingHandler.DeleteTier)

		// Portfolio (export before :id)
		admin.GET("/portfolio", c.PortfolioHandler.ListProjects)
		admin.POST("/portfolio", c.PortfolioHandler.AddProject)
		admin.GET("/portfolio/export", c.PortfolioHandler.ExportProjects)
		admin.GET("/portfolio/:id", c.PortfolioHandler.GetProject)
		admin.PUT("/portfolio/:id", c.PortfolioHandler.UpdateProject)
		admin.DELETE("/portfolio/:id", c.PortfolioHandler.DeleteProject)

		// Uploads
		admin.POST("/uploads", c.MediaHandler.Upload)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error: " + err.Error()
		}

		cacheStatus := "ok"
		if appCtx.Cache == nil {
			cacheStatus = "disconnected"
		} else if err := appCtx.Cache.Ping(ctx); err != nil {
			cacheStatus = "error: " + err.Error()
		}

		storageStatus := "disabled"
		if appCtx.Storage != nil {
			storageStatus = "ok"
			if err := appCtx.Storage.Ping(ctx); err != nil {
				storageStatus = "error: " + err.Error()
			}
		}

		if dbStatus == "ok" {
			if stats, err := appCtx.DB.Stats(); err == nil {
				health["database_pool"] = stats
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"cache":    cacheStatus,
			"storage":  storageStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
