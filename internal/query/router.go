package query

import "github.com/gin-gonic/gin"

// SetupEventRoutes mounts the public browsing endpoints.
func SetupEventRoutes(router *gin.RouterGroup, controller Controller) {
	events := router.Group("/events")
	{
		events.GET("", controller.GetEvents)                  // GET {base}/events - Browse events (flat pages)
		events.GET("/by-day", controller.GetEventsByDay)      // GET {base}/events/by-day - Browse by whole days
		events.GET("/featured", controller.GetFeaturedEvents) // GET {base}/events/featured - Featured subset
		events.GET("/filters", controller.GetFilters)         // GET {base}/events/filters - Category/day options
		events.GET("/:eventId", controller.GetEvent)          // GET {base}/events/:eventId - Event details
	}
}
