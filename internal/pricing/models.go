package pricing

import (
	"encoding/json"
	"math"
	"strconv"

	"cinebook/internal/booking"
)

// PriceSheet holds the per-category ticket prices for a session. Every
// category defaults to zero, so a missing or unrecognized upstream entry
// prices at zero instead of blocking the page.
type PriceSheet struct {
	Adult  float64 `json:"adult"`
	Child  float64 `json:"child"`
	Senior float64 `json:"senior"`
}

// PriceFor returns the amount for one ticket category
func (p PriceSheet) PriceFor(cat booking.TicketCategory) float64 {
	switch cat {
	case booking.CategoryAdult:
		return p.Adult
	case booking.CategoryChild:
		return p.Child
	case booking.CategorySenior:
		return p.Senior
	}
	return 0
}

// Quote is the priced breakdown of a ticket selection
type Quote struct {
	AdultSubtotal  float64 `json:"adult_subtotal"`
	ChildSubtotal  float64 `json:"child_subtotal"`
	SeniorSubtotal float64 `json:"senior_subtotal"`
	Total          float64 `json:"total"`
}

// NewQuote prices the given counts against the sheet
func NewQuote(counts booking.TicketCounts, sheet PriceSheet) Quote {
	q := Quote{
		AdultSubtotal:  float64(counts.Adults) * sheet.Adult,
		ChildSubtotal:  float64(counts.Children) * sheet.Child,
		SeniorSubtotal: float64(counts.Seniors) * sheet.Senior,
	}
	q.Total = q.AdultSubtotal + q.ChildSubtotal + q.SeniorSubtotal
	return q
}

// priceEntry is the upstream /prices row. The amount arrives as a JSON
// number or a string depending on the backend version, so it gets a
// tolerant decoder.
type priceEntry struct {
	Type   string     `json:"type"`
	Amount flexAmount `json:"amount"`
}

// flexAmount coerces a JSON number or numeric string into a float64.
// Valid reports whether the value parsed to a finite number.
type flexAmount struct {
	Value float64
	Valid bool
}

func (f *flexAmount) UnmarshalJSON(data []byte) error {
	f.Valid = false

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		f.set(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.ParseFloat(str, 64); err == nil {
			f.set(parsed)
		}
		return nil
	}

	// Unexpected shape: leave invalid, the entry gets discarded
	return nil
}

func (f *flexAmount) set(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	f.Value = v
	f.Valid = true
}
