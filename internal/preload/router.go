package preload

import "github.com/gin-gonic/gin"

// SetupCacheRoutes mounts the cache administration endpoints.
func SetupCacheRoutes(router *gin.RouterGroup, controller Controller) {
	cache := router.Group("/admin/cache")
	{
		cache.POST("/warm", controller.WarmCache) // POST {base}/admin/cache/warm - Bulk warm
		cache.DELETE("", controller.ClearCache)   // DELETE {base}/admin/cache - Clear
	}
}
