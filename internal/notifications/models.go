package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OrderConfirmation is the event published when an order is placed. The
// consumer side turns it into a confirmation email.
type OrderConfirmation struct {
	ID             uuid.UUID `json:"id"`
	OrderRef       string    `json:"order_ref"`
	RecipientEmail string    `json:"recipient_email"`
	Movie          string    `json:"movie"`
	Showtime       string    `json:"showtime"`
	ShowDate       string    `json:"show_date"`
	Showroom       string    `json:"showroom,omitempty"`
	Seats          []string  `json:"seats"`
	Adults         int       `json:"adults"`
	Children       int       `json:"children"`
	Seniors        int       `json:"seniors"`
	Total          float64   `json:"total"`
	PromoCode      string    `json:"promo_code,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewOrderConfirmation stamps identity and time onto a confirmation event
func NewOrderConfirmation(orderRef, email string) *OrderConfirmation {
	return &OrderConfirmation{
		ID:             uuid.New(),
		OrderRef:       orderRef,
		RecipientEmail: email,
		CreatedAt:      time.Now(),
	}
}

func (c *OrderConfirmation) ToJSON() ([]byte, error) {
	return json.Marshal(c)
}

// PartitionKey routes all events for one recipient to the same partition
// so their emails keep order.
func (c *OrderConfirmation) PartitionKey() string {
	if c.RecipientEmail != "" {
		return c.RecipientEmail
	}
	return c.OrderRef
}
