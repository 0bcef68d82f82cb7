package pricing

import (
	"context"
	"strings"
	"time"

	"cinebook/internal/booking"
	"cinebook/internal/shared/constants"
	"cinebook/internal/shared/upstream"
	"cinebook/pkg/cache"
	"cinebook/pkg/logger"
)

// Service interface defines the contract for price resolution and the
// ticket counter operations
type Service interface {
	// GetPriceSheet resolves the current sheet; degraded is true when the
	// upstream was unreachable and the zero sheet is in effect
	GetPriceSheet(ctx context.Context) (PriceSheet, bool)

	// Ticket counter operations (state lives in the session)
	GetTickets(ctx context.Context, sessionID string) (booking.TicketCounts, Quote, error)
	AdjustTickets(ctx context.Context, sessionID string, cat booking.TicketCategory, op string) (booking.TicketCounts, Quote, error)
}

// Adjustment operations accepted by AdjustTickets
const (
	OpIncrement = "increment"
	OpDecrement = "decrement"
)

type service struct {
	upstream *upstream.Client
	cache    cache.Service
	sessions *booking.Store
	priceTTL time.Duration
	logger   *logger.Logger
}

// NewService creates the pricing service
func NewService(client *upstream.Client, cacheService cache.Service, sessions *booking.Store, priceTTL time.Duration) Service {
	return &service{
		upstream: client,
		cache:    cacheService,
		sessions: sessions,
		priceTTL: priceTTL,
		logger:   logger.GetDefault(),
	}
}

func (s *service) GetPriceSheet(ctx context.Context) (PriceSheet, bool) {
	var sheet PriceSheet
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_PRICE_SHEET, s.priceTTL, func() (interface{}, error) {
		return s.fetchPriceSheet(ctx)
	}, &sheet)

	if err != nil {
		// Degrade to the zero sheet; pricing never blocks navigation
		s.logger.LogUpstreamDegraded(ctx, "/prices", err)
		return PriceSheet{}, true
	}

	return sheet, false
}

// fetchPriceSheet loads upstream price rows and overlays them on the zero
// sheet. Entries with an unparseable or non-finite amount are discarded;
// unknown categories are ignored.
func (s *service) fetchPriceSheet(ctx context.Context) (PriceSheet, error) {
	var entries []priceEntry
	if err := s.upstream.GetJSON(ctx, "/prices", &entries); err != nil {
		return PriceSheet{}, err
	}

	var sheet PriceSheet
	for _, entry := range entries {
		if !entry.Amount.Valid || entry.Amount.Value < 0 {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(entry.Type)) {
		case "adult":
			sheet.Adult = entry.Amount.Value
		case "child":
			sheet.Child = entry.Amount.Value
		case "senior":
			sheet.Senior = entry.Amount.Value
		}
	}

	return sheet, nil
}

func (s *service) GetTickets(ctx context.Context, sessionID string) (booking.TicketCounts, Quote, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return booking.TicketCounts{}, Quote{}, err
	}

	sheet, _ := s.GetPriceSheet(ctx)
	return session.Tickets, NewQuote(session.Tickets, sheet), nil
}

func (s *service) AdjustTickets(ctx context.Context, sessionID string, cat booking.TicketCategory, op string) (booking.TicketCounts, Quote, error) {
	session, err := s.sessions.Update(ctx, sessionID, func(sess *booking.Session) error {
		switch op {
		case OpIncrement:
			sess.Tickets.Increment(cat)
		case OpDecrement:
			sess.Tickets.Decrement(cat)
		}
		return nil
	})
	if err != nil {
		return booking.TicketCounts{}, Quote{}, err
	}

	sheet, _ := s.GetPriceSheet(ctx)
	return session.Tickets, NewQuote(session.Tickets, sheet), nil
}
