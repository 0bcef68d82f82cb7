package seating

import (
	"errors"
	"net/http"

	"cinebook/internal/booking"
	"cinebook/internal/shared/middleware"
	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service  Service
	sessions *booking.Store
}

func NewController(service Service, sessions *booking.Store) *Controller {
	return &Controller{service: service, sessions: sessions}
}

// GetSeatMap handles GET /api/v1/seats/show/:showId
func (c *Controller) GetSeatMap(ctx *gin.Context) {
	sessionID := middleware.GetSessionID(ctx)
	showID := ctx.Param("showId")

	seatMap, err := c.service.GetSeatMap(ctx.Request.Context(), sessionID, showID)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to load seat map", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Seat map retrieved", seatMap)
}

// ToggleSeat handles POST /api/v1/seats/toggle
func (c *Controller) ToggleSeat(ctx *gin.Context) {
	sessionID := middleware.GetSessionID(ctx)

	var req SeatToggleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	showID := req.ShowID
	if showID == "" {
		if session, err := c.sessions.Get(ctx.Request.Context(), sessionID); err == nil && session.Summary != nil {
			showID = session.Summary.ShowID
		}
	}
	if showID == "" {
		response.Error(ctx, http.StatusBadRequest, "No show selected", nil)
		return
	}

	result, err := c.service.ToggleSeat(ctx.Request.Context(), sessionID, showID, req.Seat)
	if err != nil {
		switch {
		case errors.Is(err, ErrSeatLimit):
			response.Error(ctx, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, ErrUnknownSeat):
			response.Error(ctx, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(ctx, http.StatusBadRequest, "Could not toggle seat", err.Error())
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Seat selection updated", result)
}

// ConfirmSelection handles POST /api/v1/seats/confirm
func (c *Controller) ConfirmSelection(ctx *gin.Context) {
	sessionID := middleware.GetSessionID(ctx)

	seats, err := c.service.ConfirmSelection(ctx.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrCountMismatch) {
			response.Error(ctx, http.StatusConflict, err.Error(), nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to confirm seats", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Seats confirmed", gin.H{
		"seats": seats,
	})
}
