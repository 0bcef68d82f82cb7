package pricing

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

// memCache is an in-memory cache.Service for tests, with a synchronous
// GetOrSet so assertions never race the write-back.
type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (m *memCache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memCache) Exists(ctx context.Context, key string) bool {
	_, ok := m.data[key]
	return ok
}

func (m *memCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	if err := m.Get(ctx, key, dest); err == nil {
		return nil
	}
	value, err := fetcher()
	if err != nil {
		return fmt.Errorf("fetcher error: %w", err)
	}
	if err := m.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	return m.Get(ctx, key, dest)
}

func (m *memCache) Ping(ctx context.Context) error { return nil }

func newUpstreamClient(t *testing.T, handler http.Handler) (*upstream.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := upstream.NewClient(config.UpstreamConfig{BaseURL: server.URL, Timeout: 2 * time.Second})
	return client, server
}

func TestGetPriceSheetOverlaysValidEntries(t *testing.T) {
	client, _ := newUpstreamClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/prices", r.URL.Path)
		fmt.Fprint(w, `[
			{"type":"Adult","amount":10},
			{"type":"child","amount":"5"},
			{"type":"senior","amount":"not-a-number"},
			{"type":"vip","amount":99}
		]`)
	}))

	svc := NewService(client, newMemCache(), booking.NewStore(newMemCache(), time.Hour), time.Minute)

	sheet, degraded := svc.GetPriceSheet(context.Background())
	assert.False(t, degraded)
	assert.Equal(t, 10.0, sheet.Adult)
	assert.Equal(t, 5.0, sheet.Child)

	// Invalid senior entry is discarded, leaving the zero default
	assert.Equal(t, 0.0, sheet.Senior)
}

func TestGetPriceSheetDegradesToZeroSheet(t *testing.T) {
	client := upstream.NewClient(config.UpstreamConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})
	svc := NewService(client, newMemCache(), booking.NewStore(newMemCache(), time.Hour), time.Minute)

	sheet, degraded := svc.GetPriceSheet(context.Background())
	assert.True(t, degraded)
	assert.Equal(t, PriceSheet{}, sheet)
}

func TestAdjustTicketsCountsAndQuotes(t *testing.T) {
	client, _ := newUpstreamClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"type":"adult","amount":10},{"type":"child","amount":5},{"type":"senior","amount":3}]`)
	}))

	sessions := booking.NewStore(newMemCache(), time.Hour)
	svc := NewService(client, newMemCache(), sessions, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, _, err := svc.AdjustTickets(ctx, "sid", booking.CategoryAdult, OpIncrement)
		require.NoError(t, err)
	}
	counts, quote, err := svc.AdjustTickets(ctx, "sid", booking.CategoryChild, OpIncrement)
	require.NoError(t, err)

	assert.Equal(t, booking.TicketCounts{Adults: 2, Children: 1}, counts)
	assert.Equal(t, 25.0, quote.Total)

	// Decrementing an empty category is a no-op
	counts, _, err = svc.AdjustTickets(ctx, "sid", booking.CategorySenior, OpDecrement)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Seniors)
}
