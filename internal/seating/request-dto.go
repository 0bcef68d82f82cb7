package seating

// SeatToggleRequest toggles one seat. ShowID is optional when the booking
// step has already recorded the show in the session.
type SeatToggleRequest struct {
	Seat   string `json:"seat" binding:"required"`
	ShowID string `json:"show_id"`
}
