// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"virasat/internal/booking"
	"virasat/internal/catalog"
	"virasat/internal/notifications"
	"virasat/internal/preload"
	"virasat/internal/query"
	"virasat/internal/shared/config"
	"virasat/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	catalog   *catalog.Catalog
	store     cache.Store
	producer  notifications.Producer
	preloader *preload.Preloader // For dependency injection

	bookingService booking.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, cat *catalog.Catalog, store cache.Store, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		catalog:  cat,
		store:    store,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Setup event routes (builds the preloader the cache routes reuse)
		r.setupEventRoutes(api)

		// Setup admin cache routes
		r.setupCacheRoutes(api)

		// Setup booking routes
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// Perform health checks
		if err := r.store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "virasat-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "virasat-backend",
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

// setupEventRoutes configures event browsing routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	// Initialize query dependencies
	queryService := query.NewService(r.catalog)
	preloader := preload.New(r.catalog, queryService, r.store)

	// Store preloader for dependency injection
	r.preloader = preloader

	queryController := query.NewController(queryService, r.catalog, preloader)

	// Setup event routes
	query.SetupEventRoutes(rg, queryController)
}

// setupCacheRoutes configures cache administration routes
func (r *Router) setupCacheRoutes(rg *gin.RouterGroup) {
	cacheController := preload.NewController(r.preloader)

	preload.SetupCacheRoutes(rg, cacheController)
}

// setupBookingRoutes configures booking flow routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	// Initialize booking dependencies
	processor := booking.NewSimulatedProcessor(r.config.Booking.PaymentDelay)
	bookingService := booking.NewService(r.catalog, processor, r.config.Booking.SessionTTL)

	// Inject notification producer dependency
	if r.producer != nil {
		bookingService.SetNotificationProducer(r.producer)
	}

	r.bookingService = bookingService
	bookingController := booking.NewController(bookingService)

	// Setup booking routes
	booking.SetupBookingRoutes(rg, bookingController)
}

// Close stops the booking session sweeper
func (r *Router) Close() {
	if r.bookingService != nil {
		r.bookingService.Close()
	}
}
