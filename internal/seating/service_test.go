package seating

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinebook/internal/booking"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/upstream"
	"cinebook/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache is an in-memory cache.Service with a synchronous GetOrSet
type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := f.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeCache) Exists(ctx context.Context, key string) bool {
	_, ok := f.data[key]
	return ok
}

func (f *fakeCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	if err := f.Get(ctx, key, dest); err == nil {
		return nil
	}
	value, err := fetcher()
	if err != nil {
		return fmt.Errorf("fetcher error: %w", err)
	}
	if err := f.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	return f.Get(ctx, key, dest)
}

func (f *fakeCache) Ping(ctx context.Context) error { return nil }

const availablePayload = `[
	{"seats_id":1,"seat_no":7,"row_no":"E"},
	{"seats_id":2,"seat_no":8,"row_no":"E"},
	{"seats_id":3,"seat_no":9,"row_no":"E"}
]`

func newSeatingFixture(t *testing.T, payload string) (Service, *booking.Store) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, payload)
	}))
	t.Cleanup(server.Close)

	client := upstream.NewClient(config.UpstreamConfig{BaseURL: server.URL, Timeout: 2 * time.Second})
	sessions := booking.NewStore(newFakeCache(), time.Hour)
	return NewService(client, newFakeCache(), sessions, time.Minute), sessions
}

func seedTickets(t *testing.T, sessions *booking.Store, sessionID string, adults int) {
	t.Helper()
	_, err := sessions.Update(context.Background(), sessionID, func(s *booking.Session) error {
		s.Tickets.Adults = adults
		return nil
	})
	require.NoError(t, err)
}

func TestToggleSelectsAndDeselects(t *testing.T) {
	svc, sessions := newSeatingFixture(t, availablePayload)
	seedTickets(t, sessions, "sid", 2)
	ctx := context.Background()

	result, err := svc.ToggleSeat(ctx, "sid", "77", "e7")
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, []string{"E7"}, result.Selected)

	// Second toggle deselects
	result, err = svc.ToggleSeat(ctx, "sid", "77", "E7")
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Empty(t, result.Selected)
}

func TestToggleUnavailableSeatIsNeverSelected(t *testing.T) {
	svc, sessions := newSeatingFixture(t, availablePayload)
	seedTickets(t, sessions, "sid", 2)

	// D1 exists in the layout but not in the available list
	result, err := svc.ToggleSeat(context.Background(), "sid", "77", "D1")
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Empty(t, result.Selected)
	assert.NotEmpty(t, result.Notice)

	// Clicking again changes nothing
	result, err = svc.ToggleSeat(context.Background(), "sid", "77", "D1")
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Empty(t, result.Selected)
}

func TestToggleEnforcesTicketLimit(t *testing.T) {
	svc, sessions := newSeatingFixture(t, availablePayload)
	seedTickets(t, sessions, "sid", 2)
	ctx := context.Background()

	_, err := svc.ToggleSeat(ctx, "sid", "77", "E7")
	require.NoError(t, err)
	_, err = svc.ToggleSeat(ctx, "sid", "77", "E8")
	require.NoError(t, err)

	_, err = svc.ToggleSeat(ctx, "sid", "77", "E9")
	assert.ErrorIs(t, err, ErrSeatLimit)

	// Deselecting frees a slot
	_, err = svc.ToggleSeat(ctx, "sid", "77", "E8")
	require.NoError(t, err)
	result, err := svc.ToggleSeat(ctx, "sid", "77", "E9")
	require.NoError(t, err)
	assert.Equal(t, []string{"E7", "E9"}, result.Selected)
}

func TestToggleRejectsSeatsOutsideTheLayout(t *testing.T) {
	svc, sessions := newSeatingFixture(t, availablePayload)
	seedTickets(t, sessions, "sid", 2)

	_, err := svc.ToggleSeat(context.Background(), "sid", "77", "A8")
	assert.ErrorIs(t, err, ErrUnknownSeat)

	_, err = svc.ToggleSeat(context.Background(), "sid", "77", "7E")
	assert.Error(t, err)
}

func TestConfirmSelectionRequiresExactCount(t *testing.T) {
	svc, sessions := newSeatingFixture(t, availablePayload)
	seedTickets(t, sessions, "sid", 2)
	ctx := context.Background()

	_, err := svc.ToggleSeat(ctx, "sid", "77", "E7")
	require.NoError(t, err)

	_, err = svc.ConfirmSelection(ctx, "sid")
	assert.ErrorIs(t, err, ErrCountMismatch)

	_, err = svc.ToggleSeat(ctx, "sid", "77", "E8")
	require.NoError(t, err)

	seats, err := svc.ConfirmSelection(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, []string{"E7", "E8"}, seats)
}

func TestConfirmSelectionWritesSummarySeats(t *testing.T) {
	svc, sessions := newSeatingFixture(t, availablePayload)
	ctx := context.Background()

	_, err := sessions.Update(ctx, "sid", func(s *booking.Session) error {
		s.Tickets.Adults = 1
		s.Summary = &booking.Summary{
			Movie:   "Arrival",
			ShowID:  "77",
			Tickets: booking.TicketCounts{Adults: 1},
		}
		return nil
	})
	require.NoError(t, err)

	_, err = svc.ToggleSeat(ctx, "sid", "77", "E7")
	require.NoError(t, err)
	_, err = svc.ConfirmSelection(ctx, "sid")
	require.NoError(t, err)

	sess, err := sessions.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, []string{"E7"}, sess.Summary.Seats)
}

func TestGetSeatMapMarksStates(t *testing.T) {
	svc, sessions := newSeatingFixture(t, availablePayload)
	seedTickets(t, sessions, "sid", 2)
	ctx := context.Background()

	_, err := svc.ToggleSeat(ctx, "sid", "77", "E7")
	require.NoError(t, err)

	seatMap, err := svc.GetSeatMap(ctx, "sid", "77")
	require.NoError(t, err)
	assert.False(t, seatMap.Degraded)
	assert.Equal(t, 2, seatMap.Required)

	states := map[string]SeatState{}
	for _, row := range seatMap.Rows {
		for _, seat := range row.Seats {
			states[seat.Label] = seat.State
		}
	}
	assert.Equal(t, SeatSelected, states["E7"])
	assert.Equal(t, SeatAvailable, states["E8"])
	assert.Equal(t, SeatUnavailable, states["D1"])
}

func TestGetSeatMapDegradesWhenUpstreamFails(t *testing.T) {
	client := upstream.NewClient(config.UpstreamConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})
	sessions := booking.NewStore(newFakeCache(), time.Hour)
	svc := NewService(client, newFakeCache(), sessions, time.Minute)

	seatMap, err := svc.GetSeatMap(context.Background(), "sid", "77")
	require.NoError(t, err)
	assert.True(t, seatMap.Degraded)

	for _, row := range seatMap.Rows {
		for _, seat := range row.Seats {
			assert.Equal(t, SeatAvailable, seat.State)
		}
	}
}

func TestAvailableSeatIDsRejectsInvalidPayload(t *testing.T) {
	svc, _ := newSeatingFixture(t, `[{"seats_id":0,"seat_no":7,"row_no":"E"}]`)

	_, err := svc.AvailableSeatIDs(context.Background(), "77")
	assert.Error(t, err)
}

func TestAvailableSeatIDsIndexesByLabel(t *testing.T) {
	svc, _ := newSeatingFixture(t, availablePayload)

	index, err := svc.AvailableSeatIDs(context.Background(), "77")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"E7": 1, "E8": 2, "E9": 3}, index)
}
