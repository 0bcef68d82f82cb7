package promotions

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"cinebook/internal/shared/config"
	"cinebook/internal/shared/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPromoFixture(t *testing.T, payload string) (*service, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, payload)
	}))
	t.Cleanup(server.Close)

	client := upstream.NewClient(config.UpstreamConfig{BaseURL: server.URL, Timeout: 2 * time.Second})
	svc := NewService(client).(*service)
	svc.now = func() time.Time { return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC) }
	return svc, &hits
}

func TestResolveEmptyCodeSkipsNetwork(t *testing.T) {
	svc, hits := newPromoFixture(t, `[]`)

	for _, code := range []string{"", "   "} {
		_, err := svc.Resolve(context.Background(), code)
		assert.ErrorIs(t, err, ErrEmptyCode)
	}
	assert.Equal(t, int32(0), hits.Load())
}

func TestResolveActiveCode(t *testing.T) {
	svc, _ := newPromoFixture(t, `[
		{"promotions_id":1,"code":"Summer15","discount":15,"start_date":"2026-06-01","end_date":"2026-06-30"}
	]`)

	// Lookup is case-insensitive and trims whitespace
	discount, err := svc.Resolve(context.Background(), "  summer15 ")
	require.NoError(t, err)
	assert.Equal(t, "SUMMER15", discount.Code)
	assert.Equal(t, 15.0, discount.Percent)
}

func TestResolveFirstActiveMatchWins(t *testing.T) {
	svc, _ := newPromoFixture(t, `[
		{"promotions_id":1,"code":"DOUBLE","discount":15,"start_date":"2026-06-01","end_date":"2026-06-30"},
		{"promotions_id":2,"code":"DOUBLE","discount":25,"start_date":"2026-06-01","end_date":"2026-06-30"}
	]`)

	discount, err := svc.Resolve(context.Background(), "DOUBLE")
	require.NoError(t, err)
	assert.Equal(t, 15.0, discount.Percent)
}

func TestResolveExpiredCode(t *testing.T) {
	svc, _ := newPromoFixture(t, `[
		{"promotions_id":1,"code":"OLD","discount":10,"start_date":"2026-01-01","end_date":"2026-01-31"}
	]`)

	_, err := svc.Resolve(context.Background(), "OLD")
	assert.ErrorIs(t, err, ErrExpiredCode)
}

func TestResolveUnknownCode(t *testing.T) {
	svc, _ := newPromoFixture(t, `[]`)

	_, err := svc.Resolve(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestResolveHouseCodesSkipNetwork(t *testing.T) {
	svc, hits := newPromoFixture(t, `[]`)

	discount, err := svc.Resolve(context.Background(), "save10")
	require.NoError(t, err)
	assert.Equal(t, 10.0, discount.Percent)

	discount, err = svc.Resolve(context.Background(), "CINE5")
	require.NoError(t, err)
	assert.Equal(t, 5.0, discount.Flat)

	assert.Equal(t, int32(0), hits.Load())
}

func TestResolveUpstreamUnreachable(t *testing.T) {
	client := upstream.NewClient(config.UpstreamConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})
	svc := NewService(client)

	// House codes still resolve; everything else is a hard failure, not a
	// rejection the storefront would show as "invalid code"
	discount, err := svc.Resolve(context.Background(), "save10")
	require.NoError(t, err)
	assert.Equal(t, 10.0, discount.Percent)

	_, err = svc.Resolve(context.Background(), "UNKNOWN")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCode)
}

func TestResolveRejectsInvalidPayload(t *testing.T) {
	svc, _ := newPromoFixture(t, `[{"promotions_id":0,"code":"BAD","discount":10}]`)

	// A malformed row poisons the lookup; house codes are unaffected
	_, err := svc.Resolve(context.Background(), "BAD")
	assert.Error(t, err)

	discount, err := svc.Resolve(context.Background(), "SAVE10")
	require.NoError(t, err)
	assert.Equal(t, 10.0, discount.Percent)
}
