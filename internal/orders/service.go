package orders

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrOrderNotFound = fmt.Errorf("order not found")

// Service interface defines the contract for order history
type Service interface {
	// Record persists a freshly placed order
	Record(ctx context.Context, order *Order) error

	// GetForUser fetches one order by ref, enforcing ownership
	GetForUser(ctx context.Context, ref, userID string) (*Order, error)

	// ListForUser returns the user's orders, newest first
	ListForUser(ctx context.Context, userID string) ([]Order, error)

	// RefTaken reports whether an order ref is already in use
	RefTaken(ctx context.Context, ref string) (bool, error)
}

type service struct {
	repo Repository
}

// NewService creates the orders service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, order *Order) error {
	if err := s.repo.Create(ctx, order); err != nil {
		return fmt.Errorf("failed to record order %s: %w", order.Ref, err)
	}
	return nil
}

func (s *service) GetForUser(ctx context.Context, ref, userID string) (*Order, error) {
	order, err := s.repo.GetByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	// Hide other users' orders behind the same not-found answer
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) RefTaken(ctx context.Context, ref string) (bool, error) {
	return s.repo.RefExists(ctx, ref)
}
