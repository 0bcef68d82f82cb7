package promotions

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"cinebook/internal/shared/upstream"
	"cinebook/pkg/logger"
)

var (
	ErrEmptyCode   = fmt.Errorf("please enter a promo code")
	ErrInvalidCode = fmt.Errorf("invalid promo code")
	ErrExpiredCode = fmt.Errorf("promo code is not active")
)

// Service interface defines the contract for resolving promo codes
type Service interface {
	// Resolve looks a code up and returns the discount it grants
	Resolve(ctx context.Context, code string) (*Discount, error)
}

type service struct {
	upstream *upstream.Client
	logger   *logger.Logger
	now      func() time.Time
}

// houseCodes are the storefront's advertised promos, applied without a
// lookup so checkout never blocks on the collaborator for them.
var houseCodes = map[string]Discount{
	"SAVE10": {Code: "SAVE10", Percent: 10},
	"CINE5":  {Code: "CINE5", Flat: 5},
}

// NewService creates the promotions service
func NewService(client *upstream.Client) Service {
	return &service{
		upstream: client,
		logger:   logger.GetDefault(),
		now:      time.Now,
	}
}

func (s *service) Resolve(ctx context.Context, code string) (*Discount, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, ErrEmptyCode
	}

	if house, ok := houseCodes[normalized]; ok {
		d := house
		return &d, nil
	}

	promos, err := s.fetchPromotions(ctx, normalized)
	if err != nil {
		s.logger.LogUpstreamDegraded(ctx, "/admin/promotions", err)
		return nil, fmt.Errorf("promotion service unavailable: %w", err)
	}

	expired := false
	for _, promo := range promos {
		if !strings.EqualFold(strings.TrimSpace(promo.Code), normalized) {
			continue
		}
		if !promo.activeOn(s.now()) {
			expired = true
			continue
		}
		// First active match wins
		return &Discount{Code: normalized, Percent: promo.Discount}, nil
	}

	if expired {
		return nil, ErrExpiredCode
	}
	return nil, ErrInvalidCode
}

func (s *service) fetchPromotions(ctx context.Context, code string) ([]Promotion, error) {
	var promos []Promotion
	path := "/admin/promotions?code=" + url.QueryEscape(code)
	if err := s.upstream.GetJSON(ctx, path, &promos); err != nil {
		return nil, err
	}
	for _, promo := range promos {
		if err := promo.validate(); err != nil {
			return nil, fmt.Errorf("promotions lookup: %w", err)
		}
	}
	return promos, nil
}
