// Package dryrun provides log-only notification channels. They keep the
// control flow of a real run while replacing every external call with a
// console emission.
package dryrun

import (
	"context"

	"ticketwatch/internal/domain/model"
	"ticketwatch/internal/domain/ports"
)

// Sender logs the SMS body instead of sending it.
type Sender struct {
	logger ports.Logger
}

var _ ports.MessageSender = (*Sender)(nil)

// NewSender creates a dry-run MessageSender.
func NewSender(logger ports.Logger) *Sender {
	return &Sender{logger: logger}
}

// SendMessage logs the message and reports success.
func (s *Sender) SendMessage(ctx context.Context, body string) (string, error) {
	s.logger.Info(ctx, "dry-run: skipping sms send", "body", body)
	return "dry-run", nil
}

// Webhook logs the new-ticket list instead of posting it.
type Webhook struct {
	logger ports.Logger
}

var _ ports.TicketNotifier = (*Webhook)(nil)

// NewWebhook creates a dry-run TicketNotifier.
func NewWebhook(logger ports.Logger) *Webhook {
	return &Webhook{logger: logger}
}

// NotifyNewTickets logs the tickets and reports success.
func (w *Webhook) NotifyNewTickets(ctx context.Context, tickets []model.Ticket) error {
	for _, t := range tickets {
		w.logger.Info(ctx, "dry-run: new ticket", "id", t.ID, "title", t.Title)
	}
	w.logger.Info(ctx, "dry-run: skipping webhook notification", "tickets", len(tickets))
	return nil
}
