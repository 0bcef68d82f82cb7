package promotions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscountAmountOff(t *testing.T) {
	tenPercent := Discount{Code: "SAVE10", Percent: 10}
	assert.Equal(t, 3.30, tenPercent.AmountOff(33.00))

	flatFive := Discount{Code: "CINE5", Flat: 5}
	assert.Equal(t, 5.00, flatFive.AmountOff(33.00))

	// Discounts never exceed the base total
	assert.Equal(t, 2.00, flatFive.AmountOff(2.00))
	bigPercent := Discount{Code: "MEGA", Percent: 150}
	assert.Equal(t, 33.00, bigPercent.AmountOff(33.00))

	// Nothing off nothing
	assert.Equal(t, 0.00, tenPercent.AmountOff(0))
	assert.Equal(t, 0.00, flatFive.AmountOff(-10))
}

func TestDiscountAmountOffRoundsToCents(t *testing.T) {
	d := Discount{Code: "SAVE10", Percent: 10}
	assert.Equal(t, 1.00, d.AmountOff(9.99))
	assert.Equal(t, 0.33, d.AmountOff(3.33))
}

func TestPromotionActiveOn(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	active := Promotion{StartDate: "2026-06-01", EndDate: "2026-06-30"}
	assert.True(t, active.activeOn(now))

	// End date is inclusive through the whole day
	lastDay := Promotion{StartDate: "2026-06-01", EndDate: "2026-06-15"}
	assert.True(t, lastDay.activeOn(now))

	expired := Promotion{StartDate: "2026-01-01", EndDate: "2026-01-31"}
	assert.False(t, expired.activeOn(now))

	future := Promotion{StartDate: "2026-07-01", EndDate: "2026-07-31"}
	assert.False(t, future.activeOn(now))

	// Missing dates leave the window open on that side
	openEnded := Promotion{StartDate: "2026-06-01"}
	assert.True(t, openEnded.activeOn(now))
	undated := Promotion{}
	assert.True(t, undated.activeOn(now))
}

func TestPromotionValidate(t *testing.T) {
	assert.NoError(t, Promotion{PromotionsID: 1, Code: "SAVE10", Discount: 10}.validate())
	assert.Error(t, Promotion{Code: "SAVE10", Discount: 10}.validate())
	assert.Error(t, Promotion{PromotionsID: 1, Code: " ", Discount: 10}.validate())
	assert.Error(t, Promotion{PromotionsID: 1, Code: "SAVE10", Discount: 0}.validate())
}
