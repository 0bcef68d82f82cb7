package pricing

import (
	"github.com/gin-gonic/gin"
)

// SetupPricingRoutes configures price-sheet and ticket-counter routes
func SetupPricingRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/prices", controller.GetPrices) // GET /api/v1/prices

	tickets := rg.Group("/booking/tickets")
	{
		tickets.GET("", controller.GetTickets)     // GET  /api/v1/booking/tickets
		tickets.POST("", controller.AdjustTickets) // POST /api/v1/booking/tickets
	}
}
