// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/javajoker/catalog-admin/internal/config"
	"github.com/javajoker/catalog-admin/internal/handlers"
	"github.com/javajoker/catalog-admin/internal/middleware"
	"github.com/javajoker/catalog-admin/internal/services"
)

const uploadsPath = "/uploads"

// Dependencies are the long-lived services shared by all handlers.
type Dependencies struct {
	Store       *services.CatalogStore
	Wizards     *services.WizardService
	Storage     *services.StorageService
	RateLimiter *middleware.RateLimiter
}

// NewDependencies builds the in-memory services for cfg around store.
func NewDependencies(cfg *config.Config, store *services.CatalogStore) *Dependencies {
	storage := services.NewStorageService(cfg.Upload.MaxBytes, uploadsPath)
	return &Dependencies{
		Store:       store,
		Wizards:     services.NewWizardService(store, storage, time.Duration(cfg.Wizard.SessionTTL)*time.Minute),
		Storage:     storage,
		RateLimiter: middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst),
	}
}

func Initialize(cfg *config.Config, deps *Dependencies) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(cfg)
	dashboardService := services.NewDashboardService(deps.Store)
	exportService := services.NewExportService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(deps.Store, dashboardService, exportService)
	wizardHandler := handlers.NewWizardHandler(deps.Wizards, deps.Storage)
	uploadHandler := handlers.NewUploadHandler(deps.Storage)

	// Initialize Gin router
	r := gin.New()
	r.MaxMultipartMemory = cfg.Upload.MaxBytes + 1<<20

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(deps.RateLimiter.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	r.GET(uploadsPath+"/:name", uploadHandler.Serve)

	// API v1 routes
	v1 := r.Group("/v1")
	{
		v1.POST("/auth/login", authHandler.Login)

		v1.GET("/dashboard", catalogHandler.GetDashboard)
		v1.GET("/catalog", catalogHandler.GetCatalog)
		v1.GET("/reports/catalog.xlsx", catalogHandler.ExportCatalog)

		categories := v1.Group("/categories")
		{
			categories.GET("", catalogHandler.GetCategories)
			categories.POST("", catalogHandler.CreateCategory)
		}

		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)

			// Add-product wizard
			drafts := products.Group("/drafts")
			{
				drafts.POST("", wizardHandler.StartDraft)
				drafts.GET("/:id", wizardHandler.GetDraft)

				drafts.PATCH("/:id/description", wizardHandler.UpdateDescription)
				drafts.POST("/:id/image", wizardHandler.UploadImage)

				drafts.POST("/:id/variants", wizardHandler.AddVariant)
				drafts.PATCH("/:id/variants/:index", wizardHandler.UpdateVariant)
				drafts.DELETE("/:id/variants/:index", wizardHandler.RemoveVariant)

				drafts.POST("/:id/combinations/generate", wizardHandler.GenerateCombinations)
				drafts.PATCH("/:id/combinations/*key", wizardHandler.UpdateCombination)

				drafts.PATCH("/:id/pricing", wizardHandler.UpdatePricing)

				drafts.POST("/:id/next", wizardHandler.Next)
				drafts.POST("/:id/back", wizardHandler.Back)
				drafts.POST("/:id/cancel", wizardHandler.Cancel)
				drafts.POST("/:id/confirm", wizardHandler.Confirm)
			}
		}
	}

	return r
}
