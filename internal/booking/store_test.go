package booking

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cinebook/internal/shared/constants"
	"cinebook/pkg/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	return NewStore(cache.NewService(client), time.Hour), mock
}

func TestStoreGetMissReturnsEmptySession(t *testing.T) {
	store, mock := newTestStore(t)
	mock.ExpectGet(constants.BuildSessionKey("sid-1")).RedisNil()

	session, err := store.Get(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Equal(t, &Session{}, session)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreSaveAndGetRoundTrip(t *testing.T) {
	store, mock := newTestStore(t)
	session := &Session{
		Tickets:       TicketCounts{Adults: 2, Children: 1},
		SelectedSeats: []string{"E7", "E8"},
	}

	payload, err := json.Marshal(session)
	require.NoError(t, err)

	key := constants.BuildSessionKey("sid-2")
	mock.ExpectSet(key, payload, time.Hour).SetVal("OK")
	require.NoError(t, store.Save(context.Background(), "sid-2", session))

	mock.ExpectGet(key).SetVal(string(payload))
	loaded, err := store.Get(context.Background(), "sid-2")
	require.NoError(t, err)
	assert.Equal(t, session, loaded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreUpdateAppliesMutation(t *testing.T) {
	store, mock := newTestStore(t)
	key := constants.BuildSessionKey("sid-3")

	mock.ExpectGet(key).RedisNil()

	updated := &Session{Tickets: TicketCounts{Adults: 1}}
	payload, err := json.Marshal(updated)
	require.NoError(t, err)
	mock.ExpectSet(key, payload, time.Hour).SetVal("OK")

	session, err := store.Update(context.Background(), "sid-3", func(s *Session) error {
		s.Tickets.Increment(CategoryAdult)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, session.Tickets.Adults)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreUpdatePropagatesMutationError(t *testing.T) {
	store, mock := newTestStore(t)
	mock.ExpectGet(constants.BuildSessionKey("sid-4")).RedisNil()

	_, err := store.Update(context.Background(), "sid-4", func(s *Session) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
