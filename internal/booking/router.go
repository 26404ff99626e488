package booking

import "github.com/gin-gonic/gin"

// SetupBookingRoutes mounts the booking flow endpoints.
func SetupBookingRoutes(router *gin.RouterGroup, controller Controller) {
	bookings := router.Group("/bookings")
	{
		bookings.POST("", controller.CreateSession)                       // POST {base}/bookings - Open a booking session
		bookings.GET("/seating", controller.GetSeatingTiers)              // GET {base}/bookings/seating - List seating tiers
		bookings.GET("/:sessionId", controller.GetSession)                // GET {base}/bookings/:sessionId - Session state
		bookings.POST("/:sessionId/seating", controller.SelectTier)       // POST {base}/bookings/:sessionId/seating - Choose a tier
		bookings.PATCH("/:sessionId/quantity", controller.AdjustQuantity) // PATCH {base}/bookings/:sessionId/quantity - Set ticket count
		bookings.POST("/:sessionId/confirm", controller.Confirm)          // POST {base}/bookings/:sessionId/confirm - Pay and confirm
		bookings.POST("/:sessionId/restart", controller.Restart)          // POST {base}/bookings/:sessionId/restart - Change seating
	}
}
