package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketCountsAdjustments(t *testing.T) {
	var counts TicketCounts

	counts.Increment(CategoryAdult)
	counts.Increment(CategoryAdult)
	counts.Increment(CategoryChild)
	counts.Increment(CategorySenior)

	assert.Equal(t, 2, counts.Adults)
	assert.Equal(t, 1, counts.Children)
	assert.Equal(t, 1, counts.Seniors)
	assert.Equal(t, 4, counts.Total())

	counts.Decrement(CategoryChild)
	assert.Equal(t, 0, counts.Children)

	// Decrement at zero stays at zero
	counts.Decrement(CategoryChild)
	assert.Equal(t, 0, counts.Children)
	assert.Equal(t, 3, counts.Total())
}

func TestTicketCountsGet(t *testing.T) {
	counts := TicketCounts{Adults: 2, Children: 1, Seniors: 3}

	assert.Equal(t, 2, counts.Get(CategoryAdult))
	assert.Equal(t, 1, counts.Get(CategoryChild))
	assert.Equal(t, 3, counts.Get(CategorySenior))
	assert.Equal(t, 0, counts.Get(TicketCategory("vip")))
}

func TestParseCategory(t *testing.T) {
	cat, err := ParseCategory("adult")
	assert.NoError(t, err)
	assert.Equal(t, CategoryAdult, cat)

	_, err = ParseCategory("infant")
	assert.Error(t, err)
}

func TestSummaryFinalTotal(t *testing.T) {
	summary := &Summary{Total: 33.00}
	assert.Equal(t, 33.00, summary.FinalTotal())

	discounted := 29.70
	summary.DiscountedTotal = &discounted
	assert.Equal(t, 29.70, summary.FinalTotal())
}
