package checkout

// BookingStepRequest captures the show selection made on the booking step
type BookingStepRequest struct {
	Movie    string `json:"movie" binding:"required"`
	Showtime string `json:"showtime" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Showroom string `json:"showroom"`
	ShowID   string `json:"show_id" binding:"required"`
}

// PromoRequest carries the code typed into the checkout promo box. No
// binding tag: an empty code is a domain rejection with its own message,
// not a malformed request.
type PromoRequest struct {
	Code string `json:"code"`
}
