package orders

import (
	"context"

	"gorm.io/gorm"
)

// Repository interface defines the data access contract for orders
type Repository interface {
	Create(ctx context.Context, order *Order) error
	GetByRef(ctx context.Context, ref string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	RefExists(ctx context.Context, ref string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates the gorm-backed orders repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, order *Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *repository) GetByRef(ctx context.Context, ref string) (*Order, error) {
	var order Order
	if err := r.db.WithContext(ctx).Where("ref = ?", ref).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	var list []Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) RefExists(ctx context.Context, ref string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Order{}).Where("ref = ?", ref).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
