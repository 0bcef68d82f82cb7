package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinebook/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.UpstreamConfig{BaseURL: server.URL, Timeout: 2 * time.Second})
}

func TestGetJSONDecodesPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		fmt.Fprint(w, `{"name":"Arrival"}`)
	})

	var dest struct {
		Name string `json:"name"`
	}
	require.NoError(t, client.GetJSON(context.Background(), "/movies/5", &dest))
	assert.Equal(t, "Arrival", dest.Name)
}

func TestNonSuccessStatusBecomesStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"detail":"Showtime not found"}`)
	})

	err := client.GetJSON(context.Background(), "/shows/99", nil)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "Showtime not found", statusErr.Message)
}

func TestMalformedPayloadBecomesDecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name":`)
	})

	var dest map[string]interface{}
	err := client.GetJSON(context.Background(), "/movies", &dest)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "/movies", decodeErr.Path)
}

func TestPostJSONSendsBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"reserved_id":1}`)
	})

	payload := map[string]int{"show_id": 77, "seat_id": 1, "user_id": 42}
	require.NoError(t, client.PostJSON(context.Background(), "/booking/reserve", payload, nil))
}
