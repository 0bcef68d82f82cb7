package checkout

import "cinebook/internal/booking"

// SummaryResponse is the API shape of the running booking summary
type SummaryResponse struct {
	Movie           string               `json:"movie"`
	Showtime        string               `json:"showtime"`
	Date            string               `json:"date"`
	Showroom        string               `json:"showroom,omitempty"`
	ShowID          string               `json:"show_id,omitempty"`
	Tickets         booking.TicketCounts `json:"tickets"`
	Seats           []string             `json:"seats,omitempty"`
	Total           float64              `json:"total"`
	BaseTotal       float64              `json:"base_total,omitempty"`
	Discount        float64              `json:"discount,omitempty"`
	DiscountedTotal *float64             `json:"discounted_total,omitempty"`
	PromoUsed       string               `json:"promo_used,omitempty"`
	OrderRef        string               `json:"order_ref,omitempty"`
	FinalTotal      float64              `json:"final_total"`
}

// ToSummaryResponse converts the session summary to its API shape
func ToSummaryResponse(s *booking.Summary) SummaryResponse {
	return SummaryResponse{
		Movie:           s.Movie,
		Showtime:        s.Showtime,
		Date:            s.Date,
		Showroom:        s.Showroom,
		ShowID:          s.ShowID,
		Tickets:         s.Tickets,
		Seats:           s.Seats,
		Total:           s.Total,
		BaseTotal:       s.BaseTotal,
		Discount:        s.Discount,
		DiscountedTotal: s.DiscountedTotal,
		PromoUsed:       s.PromoUsed,
		OrderRef:        s.OrderRef,
		FinalTotal:      s.FinalTotal(),
	}
}
