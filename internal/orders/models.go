package orders

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is one placed booking, persisted at commit time so the history
// survives the session TTL.
type Order struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Ref        string    `json:"ref" gorm:"uniqueIndex;not null;size:16"`
	UserID     string    `json:"user_id" gorm:"index;not null;size:64"`
	UserEmail  string    `json:"user_email" gorm:"size:255"`
	Movie      string    `json:"movie" gorm:"not null;size:255"`
	Showtime   string    `json:"showtime" gorm:"size:32"`
	ShowDate   string    `json:"show_date" gorm:"size:32"`
	Showroom   string    `json:"showroom" gorm:"size:64"`
	ShowID     string    `json:"show_id" gorm:"size:64"`
	Seats      string    `json:"-" gorm:"type:text"`
	Adults     int       `json:"adults"`
	Children   int       `json:"children"`
	Seniors    int       `json:"seniors"`
	BaseTotal  float64   `json:"base_total"`
	Discount   float64   `json:"discount"`
	FinalTotal float64   `json:"final_total"`
	PromoCode  string    `json:"promo_code,omitempty" gorm:"size:32"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// SeatLabels splits the stored seat list back into labels
func (o *Order) SeatLabels() []string {
	if o.Seats == "" {
		return nil
	}
	return strings.Split(o.Seats, ",")
}

// SetSeatLabels stores a seat list as a single column value
func (o *Order) SetSeatLabels(seats []string) {
	o.Seats = strings.Join(seats, ",")
}
