package checkout

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"cinebook/internal/booking"
	"cinebook/internal/notifications"
	"cinebook/internal/orders"
	"cinebook/internal/pricing"
	"cinebook/internal/promotions"
	"cinebook/internal/seating"
	"cinebook/internal/shared/constants"
	"cinebook/internal/shared/upstream"
	"cinebook/pkg/cache"
	"cinebook/pkg/logger"
)

var (
	ErrNoBooking   = fmt.Errorf("no booking in progress")
	ErrNoTickets   = fmt.Errorf("please select at least one ticket")
	ErrNoSeats     = fmt.Errorf("please select your seats first")
	ErrNoOrder      = fmt.Errorf("no placed order to confirm")
	ErrSeatTaken    = fmt.Errorf("seat is no longer available")
	ErrCommitFailed = fmt.Errorf("could not reserve every seat")
	ErrInvalidUser  = fmt.Errorf("invalid user account")
)

// Service interface defines the contract for the checkout pipeline
type Service interface {
	// SaveBookingStep records the show selection and prices the tickets
	SaveBookingStep(ctx context.Context, sessionID string, req BookingStepRequest) (*booking.Summary, error)

	// GetSummary returns the running booking summary
	GetSummary(ctx context.Context, sessionID string) (*booking.Summary, error)

	// ApplyPromo resolves a promo code against the summary's base total
	ApplyPromo(ctx context.Context, sessionID, code string) (*booking.Summary, error)

	// PlaceOrder reserves every selected seat and records the order
	PlaceOrder(ctx context.Context, sessionID, userID, userEmail string) (*booking.Summary, error)

	// GetConfirmation returns the summary of the placed order
	GetConfirmation(ctx context.Context, sessionID string) (*booking.Summary, error)
}

type service struct {
	sessions *booking.Store
	pricing  pricing.Service
	seating  seating.Service
	promos   promotions.Service
	orders   orders.Service
	notifier *notifications.Service
	upstream *upstream.Client
	cache    cache.Service
	logger   *logger.Logger
}

// NewService creates the checkout service
func NewService(
	sessions *booking.Store,
	pricingService pricing.Service,
	seatingService seating.Service,
	promoService promotions.Service,
	orderService orders.Service,
	notifier *notifications.Service,
	client *upstream.Client,
	cacheService cache.Service,
) Service {
	return &service{
		sessions: sessions,
		pricing:  pricingService,
		seating:  seatingService,
		promos:   promoService,
		orders:   orderService,
		notifier: notifier,
		upstream: client,
		cache:    cacheService,
		logger:   logger.GetDefault(),
	}
}

func (s *service) SaveBookingStep(ctx context.Context, sessionID string, req BookingStepRequest) (*booking.Summary, error) {
	sheet, _ := s.pricing.GetPriceSheet(ctx)

	var summary *booking.Summary
	_, err := s.sessions.Update(ctx, sessionID, func(sess *booking.Session) error {
		if sess.Tickets.Total() == 0 {
			return ErrNoTickets
		}

		// A different show invalidates any seats picked for the old one
		if sess.Summary != nil && sess.Summary.ShowID != req.ShowID {
			sess.SelectedSeats = nil
		}

		quote := pricing.NewQuote(sess.Tickets, sheet)
		sess.SelectedDate = req.Date
		sess.SelectedTheater = req.Showroom
		sess.Summary = &booking.Summary{
			Movie:    req.Movie,
			Showtime: req.Showtime,
			Date:     req.Date,
			Showroom: req.Showroom,
			ShowID:   req.ShowID,
			Tickets:  sess.Tickets,
			Total:    quote.Total,
		}
		summary = sess.Summary
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *service) GetSummary(ctx context.Context, sessionID string) (*booking.Summary, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Summary == nil {
		return nil, ErrNoBooking
	}
	return sess.Summary, nil
}

func (s *service) ApplyPromo(ctx context.Context, sessionID, code string) (*booking.Summary, error) {
	discount, err := s.promos.Resolve(ctx, code)
	if err != nil {
		return nil, err
	}

	var summary *booking.Summary
	_, err = s.sessions.Update(ctx, sessionID, func(sess *booking.Session) error {
		if sess.Summary == nil {
			return ErrNoBooking
		}

		base := sess.Summary.Total
		off := discount.AmountOff(base)
		discounted := math.Round((base-off)*100) / 100

		sess.Summary.BaseTotal = base
		sess.Summary.Discount = off
		sess.Summary.DiscountedTotal = &discounted
		sess.Summary.PromoUsed = discount.Code
		summary = sess.Summary
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.LogPromoApplied(ctx, sessionID, discount.Code, summary.Discount)
	return summary, nil
}

// reserveRequest is the upstream reservation payload, one seat per call
type reserveRequest struct {
	ShowID int64 `json:"show_id"`
	SeatID int64 `json:"seat_id"`
	UserID int64 `json:"user_id"`
}

func (s *service) PlaceOrder(ctx context.Context, sessionID, userID, userEmail string) (*booking.Summary, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Preconditions: a booked show, confirmed seats, and a numeric upstream
	// user identity. All checked before the first reservation call.
	if sess.Summary == nil || sess.Summary.ShowID == "" {
		return nil, ErrNoBooking
	}
	if len(sess.Summary.Seats) == 0 {
		return nil, ErrNoSeats
	}
	upstreamUser, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUser, userID)
	}
	showID, err := strconv.ParseInt(sess.Summary.ShowID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad show id %q", ErrNoBooking, sess.Summary.ShowID)
	}

	// Phase one: resolve every seat label to its upstream ID against live
	// availability. Any unresolvable seat aborts before a single reservation
	// is made.
	available, err := s.seating.AvailableSeatIDs(ctx, sess.Summary.ShowID)
	if err != nil {
		return nil, fmt.Errorf("seat availability unavailable: %w", err)
	}
	seatIDs := make([]int64, 0, len(sess.Summary.Seats))
	for _, label := range sess.Summary.Seats {
		id, ok := available[label]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrSeatTaken, label)
		}
		seatIDs = append(seatIDs, id)
	}

	// Phase two: reserve seat by seat. A failure part-way releases what was
	// already reserved so the show is left exactly as we found it.
	reserved := make([]int64, 0, len(seatIDs))
	for i, seatID := range seatIDs {
		payload := reserveRequest{ShowID: showID, SeatID: seatID, UserID: upstreamUser}
		if err := s.upstream.PostJSON(ctx, "/booking/reserve", payload, nil); err != nil {
			s.rollback(ctx, sessionID, showID, upstreamUser, reserved)
			return nil, fmt.Errorf("%w: seat %s: %v", ErrCommitFailed, sess.Summary.Seats[i], err)
		}
		reserved = append(reserved, seatID)
	}

	ref, err := s.newOrderRef(ctx)
	if err != nil {
		s.rollback(ctx, sessionID, showID, upstreamUser, reserved)
		return nil, err
	}

	order := s.buildOrder(ref, userID, userEmail, sess.Summary)
	if err := s.orders.Record(ctx, order); err != nil {
		s.rollback(ctx, sessionID, showID, upstreamUser, reserved)
		return nil, err
	}

	// Reserved seats changed, so the cached availability is stale
	if err := s.cache.Delete(ctx, constants.BuildAvailableSeatsKey(sess.Summary.ShowID)); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to invalidate seat availability cache", err, map[string]interface{}{
			"show_id": sess.Summary.ShowID,
		})
	}

	var summary *booking.Summary
	_, err = s.sessions.Update(ctx, sessionID, func(updated *booking.Session) error {
		if updated.Summary == nil {
			updated.Summary = sess.Summary
		}
		if updated.Summary.BaseTotal == 0 {
			updated.Summary.BaseTotal = updated.Summary.Total
		}
		updated.Summary.OrderRef = ref
		summary = updated.Summary
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.LogOrderPlaced(ctx, ref, userID, len(summary.Seats), summary.FinalTotal())
	s.publishConfirmation(ctx, order)

	return summary, nil
}

func (s *service) GetConfirmation(ctx context.Context, sessionID string) (*booking.Summary, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Summary == nil || sess.Summary.OrderRef == "" {
		return nil, ErrNoOrder
	}
	return sess.Summary, nil
}

// rollback undoes reservations made earlier in a failed commit. Release
// failures are logged and skipped; the seats expire upstream eventually.
func (s *service) rollback(ctx context.Context, sessionID string, showID, userID int64, seatIDs []int64) {
	failed := 0
	for _, seatID := range seatIDs {
		payload := reserveRequest{ShowID: showID, SeatID: seatID, UserID: userID}
		if err := s.upstream.PostJSON(ctx, "/booking/release", payload, nil); err != nil {
			failed++
			s.logger.ErrorWithContext(ctx, "Failed to release seat", err, map[string]interface{}{
				"seat_id": seatID,
				"show_id": showID,
			})
		}
	}
	s.logger.LogReservationRollback(ctx, sessionID, len(seatIDs)-failed, failed)
}

// newOrderRef draws ORD-XXXXXX refs until one is unused
func (s *service) newOrderRef(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		ref := fmt.Sprintf("ORD-%06d", rand.Intn(1000000))
		taken, err := s.orders.RefTaken(ctx, ref)
		if err != nil {
			return "", fmt.Errorf("failed to allocate order ref: %w", err)
		}
		if !taken {
			return ref, nil
		}
	}
	return "", fmt.Errorf("failed to allocate order ref: exhausted attempts")
}

func (s *service) buildOrder(ref, userID, userEmail string, summary *booking.Summary) *orders.Order {
	base := summary.BaseTotal
	if base == 0 {
		base = summary.Total
	}

	order := &orders.Order{
		Ref:        ref,
		UserID:     userID,
		UserEmail:  userEmail,
		Movie:      summary.Movie,
		Showtime:   summary.Showtime,
		ShowDate:   summary.Date,
		Showroom:   summary.Showroom,
		ShowID:     summary.ShowID,
		Adults:     summary.Tickets.Adults,
		Children:   summary.Tickets.Children,
		Seniors:    summary.Tickets.Seniors,
		BaseTotal:  base,
		Discount:   summary.Discount,
		FinalTotal: summary.FinalTotal(),
		PromoCode:  summary.PromoUsed,
	}
	order.SetSeatLabels(summary.Seats)
	return order
}

func (s *service) publishConfirmation(ctx context.Context, order *orders.Order) {
	if s.notifier == nil || order.UserEmail == "" {
		return
	}

	confirmation := notifications.NewOrderConfirmation(order.Ref, order.UserEmail)
	confirmation.Movie = order.Movie
	confirmation.Showtime = order.Showtime
	confirmation.ShowDate = order.ShowDate
	confirmation.Showroom = order.Showroom
	confirmation.Seats = order.SeatLabels()
	confirmation.Adults = order.Adults
	confirmation.Children = order.Children
	confirmation.Seniors = order.Seniors
	confirmation.Total = order.FinalTotal
	confirmation.PromoCode = order.PromoCode

	s.notifier.PublishOrderConfirmation(ctx, confirmation)
}
