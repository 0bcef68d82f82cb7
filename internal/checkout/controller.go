package checkout

import (
	"errors"
	"net/http"

	"cinebook/internal/promotions"
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

// SaveBookingStep handles POST /api/v1/booking
func (c *Controller) SaveBookingStep(ctx *gin.Context) {
	sessionID := middleware.GetSessionID(ctx)

	var req BookingStepRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	summary, err := c.service.SaveBookingStep(ctx.Request.Context(), sessionID, req)
	if err != nil {
		if errors.Is(err, ErrNoTickets) {
			response.Error(ctx, http.StatusConflict, err.Error(), nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to save booking", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Booking saved", ToSummaryResponse(summary))
}

// GetSummary handles GET /api/v1/booking/summary
func (c *Controller) GetSummary(ctx *gin.Context) {
	sessionID := middleware.GetSessionID(ctx)

	summary, err := c.service.GetSummary(ctx.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrNoBooking) {
			response.Error(ctx, http.StatusNotFound, err.Error(), nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to load summary", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Summary retrieved", ToSummaryResponse(summary))
}

// ApplyPromo handles POST /api/v1/checkout/promo
func (c *Controller) ApplyPromo(ctx *gin.Context) {
	sessionID := middleware.GetSessionID(ctx)

	var req PromoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	summary, err := c.service.ApplyPromo(ctx.Request.Context(), sessionID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrEmptyCode),
			errors.Is(err, promotions.ErrInvalidCode),
			errors.Is(err, promotions.ErrExpiredCode):
			response.Error(ctx, http.StatusUnprocessableEntity, err.Error(), nil)
		case errors.Is(err, ErrNoBooking):
			response.Error(ctx, http.StatusConflict, err.Error(), nil)
		default:
			response.Error(ctx, http.StatusBadGateway, "Could not apply promo code", err.Error())
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Promo applied", ToSummaryResponse(summary))
}

// PlaceOrder handles POST /api/v1/checkout/order
func (c *Controller) PlaceOrder(ctx *gin.Context) {
	sessionID := middleware.GetSessionID(ctx)

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "Please log in to continue", nil)
		return
	}
	userEmail := middleware.GetUserEmail(ctx)

	summary, err := c.service.PlaceOrder(ctx.Request.Context(), sessionID, userID, userEmail)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoBooking), errors.Is(err, ErrNoSeats):
			response.Error(ctx, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, ErrSeatTaken):
			response.Error(ctx, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, ErrInvalidUser):
			response.Error(ctx, http.StatusForbidden, "Your account cannot place orders", nil)
		case errors.Is(err, ErrCommitFailed):
			response.Error(ctx, http.StatusBadGateway, err.Error(), nil)
		default:
			response.Error(ctx, http.StatusBadGateway, "Failed to place order", err.Error())
		}
		return
	}

	response.Success(ctx, http.StatusCreated, "Order placed", ToSummaryResponse(summary))
}

// GetConfirmation handles GET /api/v1/checkout/confirmation
func (c *Controller) GetConfirmation(ctx *gin.Context) {
	sessionID := middleware.GetSessionID(ctx)

	summary, err := c.service.GetConfirmation(ctx.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrNoOrder) {
			response.Error(ctx, http.StatusNotFound, err.Error(), nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to load confirmation", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Confirmation retrieved", ToSummaryResponse(summary))
}
