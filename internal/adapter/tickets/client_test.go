package tickets

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketwatch/internal/adapter/logging"
	"ticketwatch/internal/domain/ports"
)

func testLogger() ports.Logger {
	return logging.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func fastClient(url string) *Client {
	c := New(url, 5*time.Second, testLogger())
	c.initialInterval = time.Millisecond
	c.maxInterval = 5 * time.Millisecond
	return c
}

func TestFetchParsesMixedIDTypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":true,"children":[{"idx":123,"title":"  Final  ","venue":"north"},{"idx":" 45 ","title":"Semi"}]}`))
	}))
	defer srv.Close()

	got, err := fastClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "123", got[0].ID)
	assert.Equal(t, "Final", got[0].Title)
	assert.Equal(t, "north", got[0].Raw["venue"])
	assert.Equal(t, "45", got[1].ID)
	assert.Equal(t, "Semi", got[1].Title)
}

func TestFetchMissingStatusMeansSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"children":[{"idx":"7","title":"Cup"}]}`))
	}))
	defer srv.Close()

	got, err := fastClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "7", got[0].ID)
}

func TestFetchStatusFalseIsPermanent(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		_, _ = w.Write([]byte(`{"status":false,"message":"sold out window closed"}`))
	}))
	defer srv.Close()

	_, err := fastClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Contains(t, statusErr.Message, "sold out")
	assert.Equal(t, 1, attempts)
}

func TestFetchMalformedBodyIsPermanent(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		_, _ = w.Write([]byte(`{"children": [`))
	}))
	defer srv.Close()

	_, err := fastClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
	assert.Equal(t, 1, attempts)
}

func TestFetchRetriesTransientThenSucceeds(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"children":[{"idx":"1","title":"A"}]}`))
	}))
	defer srv.Close()

	got, err := fastClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 3, attempts)
}

func TestFetchStopsAfterThreeAttempts(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := fastClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, attempts)
}

func TestFetchTransportErrorIsRetried(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := fastClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
}
