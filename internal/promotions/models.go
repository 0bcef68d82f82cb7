package promotions

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Promotion is the upstream row for one promo code
type Promotion struct {
	PromotionsID int64   `json:"promotions_id"`
	Code         string  `json:"code"`
	Discount     float64 `json:"discount"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
}

func (p Promotion) validate() error {
	if p.PromotionsID <= 0 {
		return fmt.Errorf("promotion missing promotions_id")
	}
	if strings.TrimSpace(p.Code) == "" {
		return fmt.Errorf("promotion %d has empty code", p.PromotionsID)
	}
	if p.Discount <= 0 || math.IsNaN(p.Discount) || math.IsInf(p.Discount, 0) {
		return fmt.Errorf("promotion %d has invalid discount %v", p.PromotionsID, p.Discount)
	}
	return nil
}

// activeOn reports whether the promotion window covers the given instant.
// Missing or unparseable dates leave that side of the window open.
func (p Promotion) activeOn(now time.Time) bool {
	if start, ok := parsePromoDate(p.StartDate); ok && now.Before(start) {
		return false
	}
	if end, ok := parsePromoDate(p.EndDate); ok && now.After(end.Add(24*time.Hour-time.Nanosecond)) {
		return false
	}
	return true
}

func parsePromoDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Discount is a resolved promo ready to apply to a base total. Exactly one
// of Percent and Flat is non-zero.
type Discount struct {
	Code    string  `json:"code"`
	Percent float64 `json:"percent,omitempty"`
	Flat    float64 `json:"flat,omitempty"`
}

// AmountOff computes the discount in dollars for a base total, rounded to
// cents and clamped so the payable amount never goes negative.
func (d Discount) AmountOff(base float64) float64 {
	if base <= 0 {
		return 0
	}
	var off float64
	if d.Percent > 0 {
		off = base * d.Percent / 100
	} else {
		off = d.Flat
	}
	off = math.Round(off*100) / 100
	if off > base {
		off = base
	}
	if off < 0 {
		off = 0
	}
	return off
}
