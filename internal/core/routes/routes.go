package routes

import (
	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/core/container"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with recovery and request logging installed
// and every route registered.
func NewRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(c.Logger), middleware.RequestLogger(c.Logger))

	RegisterPublicRoutes(router, c)
	RegisterUtilityRoutes(router, c)

	return router
}

// RegisterPublicRoutes registers the inventory API. Mutating routes are rate
// limited per client.
func RegisterPublicRoutes(router *gin.Engine, c *container.Container) {
	limit := middleware.RateLimitMiddleware(c.RateLimiter, c.Logger)

	c.ItemHandler.RegisterRoutes(router, limit)
	c.LocationHandler.RegisterRoutes(router)
	c.DeploymentHandler.RegisterRoutes(router, limit)
}

func RegisterUtilityRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/health", c.Health.HealthCheckHandler())
}
