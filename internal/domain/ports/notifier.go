package ports

import (
	"context"

	"ticketwatch/internal/domain/model"
)

// MessageSender is the primary notification channel (SMS). It returns the
// provider's opaque message identifier on success.
type MessageSender interface {
	SendMessage(ctx context.Context, body string) (string, error)
}

// TicketNotifier is the fallback channel, carrying the full new-ticket
// list (e.g. a chat webhook).
type TicketNotifier interface {
	NotifyNewTickets(ctx context.Context, tickets []model.Ticket) error
}
