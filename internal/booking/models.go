package booking

import "fmt"

// TicketCategory identifies a priced ticket class
type TicketCategory string

const (
	CategoryAdult  TicketCategory = "adult"
	CategoryChild  TicketCategory = "child"
	CategorySenior TicketCategory = "senior"
)

// ParseCategory validates a free-form category string
func ParseCategory(s string) (TicketCategory, error) {
	switch TicketCategory(s) {
	case CategoryAdult, CategoryChild, CategorySenior:
		return TicketCategory(s), nil
	}
	return "", fmt.Errorf("unknown ticket category %q", s)
}

// TicketCounts tracks how many tickets of each category are in the cart.
// Counts never go below zero; Decrement is a no-op at zero.
type TicketCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Seniors  int `json:"seniors"`
}

// Total returns the overall ticket count
func (t TicketCounts) Total() int {
	return t.Adults + t.Children + t.Seniors
}

// Get returns the count for one category
func (t TicketCounts) Get(cat TicketCategory) int {
	switch cat {
	case CategoryAdult:
		return t.Adults
	case CategoryChild:
		return t.Children
	case CategorySenior:
		return t.Seniors
	}
	return 0
}

// Increment bumps the count for one category
func (t *TicketCounts) Increment(cat TicketCategory) {
	switch cat {
	case CategoryAdult:
		t.Adults++
	case CategoryChild:
		t.Children++
	case CategorySenior:
		t.Seniors++
	}
}

// Decrement lowers the count for one category, clamping at zero
func (t *TicketCounts) Decrement(cat TicketCategory) {
	switch cat {
	case CategoryAdult:
		if t.Adults > 0 {
			t.Adults--
		}
	case CategoryChild:
		if t.Children > 0 {
			t.Children--
		}
	case CategorySenior:
		if t.Seniors > 0 {
			t.Seniors--
		}
	}
}

// Summary is the single booking record threaded from the booking step through
// seat selection and checkout to confirmation. It is written at three points:
// the booking step fills the show fields, the seat step fills Seats, and order
// placement fills the discount fields. Confirmation only reads it back.
type Summary struct {
	Movie    string       `json:"movie"`
	Showtime string       `json:"showtime"`
	Date     string       `json:"date"`
	Showroom string       `json:"showroom,omitempty"`
	ShowID   string       `json:"show_id,omitempty"`
	Tickets  TicketCounts `json:"tickets"`
	Total    float64      `json:"total"`
	Seats    []string     `json:"seats,omitempty"`

	// Filled once an order is placed
	BaseTotal       float64  `json:"base_total,omitempty"`
	Discount        float64  `json:"discount,omitempty"`
	DiscountedTotal *float64 `json:"discounted_total,omitempty"`
	PromoUsed       string   `json:"promo_used,omitempty"`
	OrderRef        string   `json:"order_ref,omitempty"`
}

// FinalTotal returns the amount actually charged: the discounted total when
// present, the base total otherwise. Confirmation must not recompute pricing.
func (s *Summary) FinalTotal() float64 {
	if s.DiscountedTotal != nil {
		return *s.DiscountedTotal
	}
	return s.Total
}

// Session is the full cross-page state for one storefront session. It is the
// typed replacement for the old storefront's ambient key-value storage: each
// pipeline step reads and writes only its own fields.
type Session struct {
	Tickets         TicketCounts `json:"tickets"`
	SelectedDate    string       `json:"selected_date,omitempty"`
	SelectedSeats   []string     `json:"selected_seats,omitempty"`
	SelectedTheater string       `json:"selected_theater,omitempty"`
	Summary         *Summary     `json:"summary,omitempty"`
}
