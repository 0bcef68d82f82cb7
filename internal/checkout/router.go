package checkout

import (
	"github.com/gin-gonic/gin"
)

// SetupCheckoutRoutes configures the booking-step and checkout routes.
// Placing and confirming an order require a logged-in user; everything
// before that works on the anonymous session.
func SetupCheckoutRoutes(rg *gin.RouterGroup, controller *Controller, auth gin.HandlerFunc) {
	bookingGroup := rg.Group("/booking")
	{
		bookingGroup.POST("", controller.SaveBookingStep) // POST /api/v1/booking
		bookingGroup.GET("/summary", controller.GetSummary)
	}

	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.POST("/promo", controller.ApplyPromo)
		checkoutGroup.POST("/order", auth, controller.PlaceOrder)
		checkoutGroup.GET("/confirmation", auth, controller.GetConfirmation)
	}
}
