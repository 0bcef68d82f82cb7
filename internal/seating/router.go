package seating

import (
	"github.com/gin-gonic/gin"
)

// SetupSeatingRoutes configures seat map and selection routes
func SetupSeatingRoutes(rg *gin.RouterGroup, controller *Controller) {
	seats := rg.Group("/seats")
	{
		seats.GET("/show/:showId", controller.GetSeatMap)    // GET  /api/v1/seats/show/:showId
		seats.POST("/toggle", controller.ToggleSeat)         // POST /api/v1/seats/toggle
		seats.POST("/confirm", controller.ConfirmSelection)  // POST /api/v1/seats/confirm
	}
}
