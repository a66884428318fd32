package webhook

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"ticketwatch/internal/adapter/logging"
	"ticketwatch/internal/domain/model"
	"ticketwatch/internal/domain/ports"
)

func testLogger() ports.Logger {
	return logging.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func sampleTickets() []model.Ticket {
	return []model.Ticket{
		{ID: "2", Title: "Semi Final", Raw: map[string]any{"idx": "2", "title": "Semi Final", "venue": "north"}},
		{ID: "3", Title: "Final"},
	}
}

func TestNotifyPostsGenericPayload(t *testing.T) {
	var captured []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		captured, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	n := New(srv.URL, time.Second, testLogger())
	require.NoError(t, n.NotifyNewTickets(context.Background(), sampleTickets()))

	body := gjson.ParseBytes(captured)
	assert.Contains(t, body.Get("message").String(), "Semi Final (ID: 2)")
	assert.Contains(t, body.Get("message").String(), "Final (ID: 3)")
	require.Equal(t, int64(2), body.Get("tickets.#").Int())
	assert.Equal(t, "north", body.Get("tickets.0.venue").String())
	assert.Equal(t, "3", body.Get("tickets.1.idx").String())
}

func TestNotifyErrorsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := New(srv.URL, time.Second, testLogger()).NotifyNewTickets(context.Background(), sampleTickets())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestNotifyErrorsOnEmptyURL(t *testing.T) {
	err := New("", time.Second, testLogger()).NotifyNewTickets(context.Background(), sampleTickets())
	require.Error(t, err)
}

func TestPayloadForDiscord(t *testing.T) {
	payload, ok := payloadFor("https://discord.com/api/webhooks/1/abc", sampleTickets()).(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "Ticket Monitor", payload["username"])
	content, _ := payload["content"].(string)
	assert.Contains(t, content, "New Match Tickets Available!")
	assert.Contains(t, content, "• Semi Final (ID: 2)")
}

func TestPayloadForSlack(t *testing.T) {
	payload, ok := payloadFor("https://hooks.slack.com/services/T/B/x", sampleTickets()).(map[string]any)
	require.True(t, ok)

	_, hasUsername := payload["username"]
	assert.False(t, hasUsername)
	text, _ := payload["text"].(string)
	assert.Contains(t, text, "• Final (ID: 3)")
}

func TestPayloadForGenericFillsUnknowns(t *testing.T) {
	payload, ok := payloadFor("https://example.com/hook", []model.Ticket{{}}).(map[string]any)
	require.True(t, ok)

	message, _ := payload["message"].(string)
	assert.Contains(t, message, "Unknown (ID: Unknown)")
}
