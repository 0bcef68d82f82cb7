package orders

import (
	"github.com/gin-gonic/gin"
)

// SetupOrdersRoutes configures order history routes. All of them require a
// logged-in user, so auth is applied at the group level.
func SetupOrdersRoutes(rg *gin.RouterGroup, controller *Controller, auth gin.HandlerFunc) {
	group := rg.Group("/orders")
	group.Use(auth)
	{
		group.GET("", controller.ListOrders)       // GET /api/v1/orders
		group.GET("/:ref", controller.GetOrder)    // GET /api/v1/orders/:ref
	}
}
