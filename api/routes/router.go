// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"cinebook/internal/booking"
	"cinebook/internal/catalog"
	"cinebook/internal/checkout"
	"cinebook/internal/notifications"
	"cinebook/internal/orders"
	"cinebook/internal/pricing"
	"cinebook/internal/promotions"
	"cinebook/internal/seating"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/database"
	"cinebook/internal/shared/middleware"
	"cinebook/internal/shared/upstream"
	"cinebook/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	notifier *notifications.Service

	// Shared plumbing, built once in SetupRoutes
	upstream *upstream.Client
	cache    cache.Service
	sessions *booking.Store

	// Cross-domain services wired during setup
	pricingService pricing.Service
	seatingService seating.Service
	promoService   promotions.Service
	orderService   orders.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, notifier *notifications.Service) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		notifier: notifier,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Shared plumbing for every domain
	r.upstream = upstream.NewClient(r.config.Upstream)
	r.cache = cache.NewService(r.db.GetRedis())
	r.sessions = booking.NewStore(r.cache, r.config.Redis.SessionTTL)

	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes; every request carries a storefront session
	api := engine.Group(r.config.GetAPIBasePath())
	api.Use(middleware.SessionID())
	{
		r.setupCatalogRoutes(api)
		r.setupPricingRoutes(api)
		r.setupSeatingRoutes(api)
		r.setupCheckoutRoutes(api)
		r.setupOrderRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cinebook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cinebook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupCatalogRoutes configures movie and showtime browsing routes
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	catalogService := catalog.NewService(r.upstream, r.cache)
	catalogController := catalog.NewController(catalogService)

	catalog.SetupCatalogRoutes(rg, catalogController)
}

// setupPricingRoutes configures price sheet and ticket counter routes
func (r *Router) setupPricingRoutes(rg *gin.RouterGroup) {
	r.pricingService = pricing.NewService(r.upstream, r.cache, r.sessions, r.config.Redis.PriceTTL)
	pricingController := pricing.NewController(r.pricingService)

	pricing.SetupPricingRoutes(rg, pricingController)
}

// setupSeatingRoutes configures seat map and selection routes
func (r *Router) setupSeatingRoutes(rg *gin.RouterGroup) {
	r.seatingService = seating.NewService(r.upstream, r.cache, r.sessions, r.config.Redis.SeatsTTL)
	seatingController := seating.NewController(r.seatingService, r.sessions)

	seating.SetupSeatingRoutes(rg, seatingController)
}

// setupCheckoutRoutes configures the booking-step and checkout routes
func (r *Router) setupCheckoutRoutes(rg *gin.RouterGroup) {
	r.promoService = promotions.NewService(r.upstream)

	orderRepo := orders.NewRepository(r.db.GetPostgreSQL())
	r.orderService = orders.NewService(orderRepo)

	checkoutService := checkout.NewService(
		r.sessions,
		r.pricingService,
		r.seatingService,
		r.promoService,
		r.orderService,
		r.notifier,
		r.upstream,
		r.cache,
	)
	checkoutController := checkout.NewController(checkoutService)

	checkout.SetupCheckoutRoutes(rg, checkoutController, middleware.JWTAuthWithConfig(r.config))
}

// setupOrderRoutes configures order history routes
func (r *Router) setupOrderRoutes(rg *gin.RouterGroup) {
	orderController := orders.NewController(r.orderService)

	orders.SetupOrdersRoutes(rg, orderController, middleware.JWTAuthWithConfig(r.config))
}
