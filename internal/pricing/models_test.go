package pricing

import (
	"encoding/json"
	"testing"

	"cinebook/internal/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexAmountDecoding(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		value float64
		valid bool
	}{
		{"json number", `{"type":"adult","amount":10.5}`, 10.5, true},
		{"numeric string", `{"type":"adult","amount":"8.25"}`, 8.25, true},
		{"integer string", `{"type":"adult","amount":"7"}`, 7, true},
		{"garbage string", `{"type":"adult","amount":"free"}`, 0, false},
		{"object", `{"type":"adult","amount":{"v":1}}`, 0, false},
		{"null", `{"type":"adult","amount":null}`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entry priceEntry
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &entry))
			assert.Equal(t, tt.valid, entry.Amount.Valid)
			if tt.valid {
				assert.Equal(t, tt.value, entry.Amount.Value)
			}
		})
	}
}

func TestNewQuote(t *testing.T) {
	sheet := PriceSheet{Adult: 10.00, Child: 5.00, Senior: 3.00}
	counts := booking.TicketCounts{Adults: 2, Children: 2, Seniors: 1}

	quote := NewQuote(counts, sheet)

	assert.Equal(t, 20.00, quote.AdultSubtotal)
	assert.Equal(t, 10.00, quote.ChildSubtotal)
	assert.Equal(t, 3.00, quote.SeniorSubtotal)
	assert.Equal(t, 33.00, quote.Total)
}

func TestNewQuoteZeroSheetPricesAtZero(t *testing.T) {
	quote := NewQuote(booking.TicketCounts{Adults: 3, Seniors: 2}, PriceSheet{})
	assert.Equal(t, 0.00, quote.Total)
}

func TestPriceFor(t *testing.T) {
	sheet := PriceSheet{Adult: 10, Child: 5, Senior: 3}
	assert.Equal(t, 10.0, sheet.PriceFor(booking.CategoryAdult))
	assert.Equal(t, 5.0, sheet.PriceFor(booking.CategoryChild))
	assert.Equal(t, 3.0, sheet.PriceFor(booking.CategorySenior))
	assert.Equal(t, 0.0, sheet.PriceFor(booking.TicketCategory("vip")))
}
