package orders

import (
	"errors"
	"net/http"

	"cinebook/internal/shared/middleware"
	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListOrders handles GET /api/v1/orders
func (c *Controller) ListOrders(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "Please log in to continue", nil)
		return
	}

	list, err := c.service.ListForUser(ctx.Request.Context(), userID)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to load orders", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Orders retrieved", ToResponseList(list))
}

// GetOrder handles GET /api/v1/orders/:ref
func (c *Controller) GetOrder(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "Please log in to continue", nil)
		return
	}

	order, err := c.service.GetForUser(ctx.Request.Context(), ctx.Param("ref"), userID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			response.Error(ctx, http.StatusNotFound, "Order not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to load order", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Order retrieved", ToResponse(order))
}
