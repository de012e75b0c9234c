package counter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCounter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/scans/summary", r.URL.Path)
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_scans": 150, "unique_scans": 90}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-1")

	total, unique, err := c.FetchCounter(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(150), total)
	assert.Equal(t, int64(90), unique)
}

func TestFetchCounter_RejectedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad-key")

	_, _, err := c.FetchCounter(context.Background())
	assert.ErrorIs(t, err, ErrCounterUnavailable)
}

func TestFetchCounter_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	c := NewClient(srv.URL, "key-1")

	_, _, err := c.FetchCounter(context.Background())
	assert.ErrorIs(t, err, ErrCounterUnavailable)
}

func TestFetchCounter_NotConfigured(t *testing.T) {
	c := NewClient("", "")

	_, _, err := c.FetchCounter(context.Background())
	assert.ErrorIs(t, err, ErrCounterUnavailable)
}

func TestFetchCounter_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total_scans":`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-1")

	_, _, err := c.FetchCounter(context.Background())
	assert.ErrorIs(t, err, ErrCounterUnavailable)
}
