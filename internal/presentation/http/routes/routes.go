package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/personnalite/estoque-api/internal/config"
	"github.com/personnalite/estoque-api/internal/presentation/http/handler"
	"github.com/personnalite/estoque-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Product *handler.ProductHandler
	Report  *handler.ReportHandler
	Sales   *handler.SalesHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// Flat routes preserve the reference clients' paths; /api/v1 carries
	// the same handlers for versioned consumers.
	registerRoutes(&router.RouterGroup, h)
	registerRoutes(router.Group("/api/v1"), h)

	return router
}

func registerRoutes(g *gin.RouterGroup, h *Handlers) {
	products := g.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		// Registered before /:id so gin does not treat it as a product ID
		products.POST("/send-report", h.Report.SendReport)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.PATCH("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.PATCH("/:id/stock", h.Product.AdjustStock)
	}

	sales := g.Group("/sales")
	{
		sales.GET("", h.Sales.List)
		sales.POST("", h.Sales.Add)
		sales.DELETE("/:id", h.Sales.Remove)
		sales.GET("/totals", h.Sales.Totals)
		sales.POST("/report", h.Sales.GenerateReport)
	}
}
