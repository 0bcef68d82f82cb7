package pricing

import (
	"net/http"

	"cinebook/internal/booking"
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

// GetPrices handles GET /api/v1/prices
func (c *Controller) GetPrices(ctx *gin.Context) {
	sheet, degraded := c.service.GetPriceSheet(ctx.Request.Context())

	message := "Prices retrieved successfully"
	if degraded {
		message = "Price service unavailable, showing $0 defaults"
	}

	response.Success(ctx, http.StatusOK, message, gin.H{
		"prices":   sheet,
		"degraded": degraded,
	})
}

// GetTickets handles GET /api/v1/booking/tickets
func (c *Controller) GetTickets(ctx *gin.Context) {
	sessionID := middleware.GetSessionID(ctx)

	counts, quote, err := c.service.GetTickets(ctx.Request.Context(), sessionID)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to load ticket selection", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Ticket selection retrieved", gin.H{
		"tickets": counts,
		"quote":   quote,
	})
}

// AdjustTickets handles POST /api/v1/booking/tickets
func (c *Controller) AdjustTickets(ctx *gin.Context) {
	sessionID := middleware.GetSessionID(ctx)

	var req TicketAdjustmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	cat, err := booking.ParseCategory(req.Category)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Unknown ticket category", err.Error())
		return
	}

	counts, quote, err := c.service.AdjustTickets(ctx.Request.Context(), sessionID, cat, req.Op)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to update ticket selection", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Ticket selection updated", gin.H{
		"tickets": counts,
		"quote":   quote,
	})
}
