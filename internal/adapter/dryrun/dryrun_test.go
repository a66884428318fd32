package dryrun

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketwatch/internal/adapter/logging"
	"ticketwatch/internal/domain/model"
)

func TestSenderCountsAsDelivered(t *testing.T) {
	logger := logging.New(slog.New(slog.NewTextHandler(io.Discard, nil)))

	sid, err := NewSender(logger).SendMessage(context.Background(), "2 new tickets")
	require.NoError(t, err)
	assert.Equal(t, "dry-run", sid)
}

func TestWebhookCountsAsDelivered(t *testing.T) {
	logger := logging.New(slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := NewWebhook(logger).NotifyNewTickets(context.Background(), []model.Ticket{{ID: "1", Title: "A"}})
	require.NoError(t, err)
}
