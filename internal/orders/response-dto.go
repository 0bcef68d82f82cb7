package orders

import "time"

// OrderResponse is the API shape for one order
type OrderResponse struct {
	Ref        string    `json:"ref"`
	Movie      string    `json:"movie"`
	Showtime   string    `json:"showtime"`
	ShowDate   string    `json:"show_date"`
	Showroom   string    `json:"showroom,omitempty"`
	Seats      []string  `json:"seats"`
	Adults     int       `json:"adults"`
	Children   int       `json:"children"`
	Seniors    int       `json:"seniors"`
	BaseTotal  float64   `json:"base_total"`
	Discount   float64   `json:"discount"`
	FinalTotal float64   `json:"final_total"`
	PromoCode  string    `json:"promo_code,omitempty"`
	PlacedAt   time.Time `json:"placed_at"`
}

// ToResponse converts a stored order to its API shape
func ToResponse(o *Order) OrderResponse {
	return OrderResponse{
		Ref:        o.Ref,
		Movie:      o.Movie,
		Showtime:   o.Showtime,
		ShowDate:   o.ShowDate,
		Showroom:   o.Showroom,
		Seats:      o.SeatLabels(),
		Adults:     o.Adults,
		Children:   o.Children,
		Seniors:    o.Seniors,
		BaseTotal:  o.BaseTotal,
		Discount:   o.Discount,
		FinalTotal: o.FinalTotal,
		PromoCode:  o.PromoCode,
		PlacedAt:   o.CreatedAt,
	}
}

// ToResponseList converts a slice of stored orders
func ToResponseList(list []Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for i := range list {
		out = append(out, ToResponse(&list[i]))
	}
	return out
}
