package seating

import (
	"context"
	"fmt"
	"time"

	"cinebook/internal/booking"
	"cinebook/internal/shared/constants"
	"cinebook/internal/shared/upstream"
	"cinebook/pkg/cache"
	"cinebook/pkg/logger"
)

// Sentinel errors for the selection rules
var (
	ErrNoShow          = fmt.Errorf("no show selected")
	ErrSeatLimit       = fmt.Errorf("seat limit reached")
	ErrCountMismatch   = fmt.Errorf("seat count does not match ticket count")
	ErrUnknownSeat     = fmt.Errorf("seat does not exist in this theater")
	ErrSeatUnavailable = fmt.Errorf("seat is unavailable")
)

// Service interface defines the contract for the seat map and selector
type Service interface {
	// GetSeatMap renders the layout with per-seat state for the session's show
	GetSeatMap(ctx context.Context, sessionID, showID string) (*SeatMap, error)

	// ToggleSeat applies the selection rules to one seat
	ToggleSeat(ctx context.Context, sessionID, showID, label string) (*ToggleResult, error)

	// ConfirmSelection validates the exactly-N rule and persists the seats
	ConfirmSelection(ctx context.Context, sessionID string) ([]string, error)

	// AvailableSeatIDs maps canonical seat labels to upstream seat IDs for a show
	AvailableSeatIDs(ctx context.Context, showID string) (map[string]int64, error)
}

type service struct {
	upstream *upstream.Client
	cache    cache.Service
	sessions *booking.Store
	seatsTTL time.Duration
	logger   *logger.Logger
}

// NewService creates the seating service
func NewService(client *upstream.Client, cacheService cache.Service, sessions *booking.Store, seatsTTL time.Duration) Service {
	return &service{
		upstream: client,
		cache:    cacheService,
		sessions: sessions,
		seatsTTL: seatsTTL,
		logger:   logger.GetDefault(),
	}
}

// AvailableSeatIDs fetches the bookable seats for a show and indexes them by
// canonical label. Entries that fail validation reject the whole payload.
func (s *service) AvailableSeatIDs(ctx context.Context, showID string) (map[string]int64, error) {
	var seats []availableSeat
	key := constants.BuildAvailableSeatsKey(showID)

	err := s.cache.GetOrSet(ctx, key, s.seatsTTL, func() (interface{}, error) {
		var fetched []availableSeat
		if err := s.upstream.GetJSON(ctx, "/seats/show/"+showID+"/available", &fetched); err != nil {
			return nil, err
		}
		for _, seat := range fetched {
			if err := seat.validate(); err != nil {
				return nil, fmt.Errorf("available seats for show %s: %w", showID, err)
			}
		}
		return fetched, nil
	}, &seats)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int64, len(seats))
	for _, seat := range seats {
		index[SeatLabel(seat.RowNo, seat.SeatNo)] = seat.SeatsID
	}
	return index, nil
}

func (s *service) GetSeatMap(ctx context.Context, sessionID, showID string) (*SeatMap, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Degrade to an all-available map when the availability fetch fails;
	// the commit path re-checks against live data anyway.
	degraded := false
	available, err := s.AvailableSeatIDs(ctx, showID)
	if err != nil {
		s.logger.LogUpstreamDegraded(ctx, "/seats/show/"+showID+"/available", err)
		available = nil
		degraded = true
	}

	selected := make(map[string]bool, len(session.SelectedSeats))
	for _, label := range session.SelectedSeats {
		selected[label] = true
	}

	rows := make([]RowView, 0, len(theaterLayout))
	for _, row := range Layout() {
		view := RowView{Row: row.Label, Max: row.Max, Seats: make([]SeatView, 0, len(row.Seats))}
		for _, n := range row.Seats {
			label := SeatLabel(row.Label, n)
			state := SeatAvailable
			switch {
			case selected[label]:
				state = SeatSelected
			case !degraded && available[label] == 0:
				state = SeatUnavailable
			}
			view.Seats = append(view.Seats, SeatView{Label: label, Number: n, State: state})
		}
		rows = append(rows, view)
	}

	return &SeatMap{
		ShowID:   showID,
		Rows:     rows,
		Selected: append([]string{}, session.SelectedSeats...),
		Required: requiredTickets(session),
		Degraded: degraded,
	}, nil
}

func (s *service) ToggleSeat(ctx context.Context, sessionID, showID, label string) (*ToggleResult, error) {
	canonical, err := Canonicalize(label)
	if err != nil {
		return nil, err
	}
	if !LayoutContains(canonical) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSeat, canonical)
	}

	available, err := s.AvailableSeatIDs(ctx, showID)
	unavailableKnown := err == nil
	if err != nil {
		s.logger.LogUpstreamDegraded(ctx, "/seats/show/"+showID+"/available", err)
	}

	var result *ToggleResult
	_, err = s.sessions.Update(ctx, sessionID, func(sess *booking.Session) error {
		required := requiredTickets(sess)

		// Unavailable seats never become selected, no matter how often clicked
		if unavailableKnown && available[canonical] == 0 && !containsSeat(sess.SelectedSeats, canonical) {
			result = &ToggleResult{
				Seat:     canonical,
				Selected: append([]string{}, sess.SelectedSeats...),
				Changed:  false,
				Notice:   fmt.Sprintf("Seat %s is unavailable.", canonical),
			}
			return nil
		}

		if containsSeat(sess.SelectedSeats, canonical) {
			sess.SelectedSeats = removeSeat(sess.SelectedSeats, canonical)
			result = &ToggleResult{
				Seat:     canonical,
				Selected: append([]string{}, sess.SelectedSeats...),
				Changed:  true,
			}
			return nil
		}

		if required > 0 && len(sess.SelectedSeats) >= required {
			return fmt.Errorf("%w: you can select up to %d seats", ErrSeatLimit, required)
		}

		sess.SelectedSeats = append(sess.SelectedSeats, canonical)
		result = &ToggleResult{
			Seat:     canonical,
			Selected: append([]string{}, sess.SelectedSeats...),
			Changed:  true,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *service) ConfirmSelection(ctx context.Context, sessionID string) ([]string, error) {
	var confirmed []string
	_, err := s.sessions.Update(ctx, sessionID, func(sess *booking.Session) error {
		required := requiredTickets(sess)
		if required > 0 && len(sess.SelectedSeats) != required {
			return fmt.Errorf("%w: please select exactly %d seats, you currently have %d",
				ErrCountMismatch, required, len(sess.SelectedSeats))
		}

		confirmed = append([]string{}, sess.SelectedSeats...)
		if sess.Summary != nil {
			sess.Summary.Seats = confirmed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.LogSeatsConfirmed(ctx, sessionID, confirmed)
	return confirmed, nil
}

// requiredTickets reads the ticket total the seat selection must match.
// The booking-step snapshot wins over the live counter.
func requiredTickets(sess *booking.Session) int {
	if sess.Summary != nil {
		return sess.Summary.Tickets.Total()
	}
	return sess.Tickets.Total()
}

func containsSeat(seats []string, label string) bool {
	for _, s := range seats {
		if s == label {
			return true
		}
	}
	return false
}

func removeSeat(seats []string, label string) []string {
	out := seats[:0]
	for _, s := range seats {
		if s != label {
			out = append(out, s)
		}
	}
	return out
}
