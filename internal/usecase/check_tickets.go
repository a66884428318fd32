package usecase

import (
	"context"
	"fmt"
	"time"

	"ticketwatch/internal/domain/model"
	"ticketwatch/internal/domain/ports"
)

// fetchFailedBody is the fixed SMS sent when the listing cannot be
// fetched. Operators treat it as the signal that the fetch step broke.
const fetchFailedBody = "FAILED"

// TicketCheck runs one fetch-compare-notify cycle: fetch the listing,
// diff it against the known-ID set, and alert about new tickets via SMS
// with a webhook fallback.
type TicketCheck struct {
	source  ports.TicketSource
	sms     ports.MessageSender
	webhook ports.TicketNotifier
	logger  ports.Logger

	known    model.KnownIDSet
	disabled bool
}

// TicketCheckConfig controls the check behaviour.
type TicketCheckConfig struct {
	KnownIDs model.KnownIDSet
	Disabled bool
}

// NewTicketCheck constructs a TicketCheck use case.
func NewTicketCheck(
	source ports.TicketSource,
	sms ports.MessageSender,
	webhook ports.TicketNotifier,
	logger ports.Logger,
	cfg TicketCheckConfig,
) *TicketCheck {
	return &TicketCheck{
		source:   source,
		sms:      sms,
		webhook:  webhook,
		logger:   logger,
		known:    cfg.KnownIDs,
		disabled: cfg.Disabled,
	}
}

// Run executes one check cycle. Every failure is handled here; the
// returned outcome is for logging only and nothing propagates as a fault.
func (t *TicketCheck) Run(ctx context.Context) model.Outcome {
	if t.disabled {
		t.logger.Info(ctx, "execution disabled, skipping check")
		return model.OutcomeDisabled
	}

	start := time.Now()
	t.logger.Info(ctx, "checking for new match tickets", "known_ids", t.known.Len())

	tickets, err := t.source.Fetch(ctx)
	if err != nil {
		t.logger.Error(ctx, "failed to fetch tickets", "error", err)
		t.sendFailureAlert(ctx)
		return model.OutcomeFetchFailed
	}

	fresh := newTickets(tickets, t.known)
	t.logger.Debug(ctx, "skipped known tickets", "count", len(tickets)-len(fresh))
	for _, ticket := range fresh {
		t.logger.Info(ctx, "found new ticket", "id", ticket.ID, "title", ticket.Title)
	}
	t.logger.Info(ctx, "listing diffed",
		"total", len(tickets), "new", len(fresh), "duration", time.Since(start))

	if len(fresh) == 0 {
		t.logger.Info(ctx, "no new tickets found")
		return model.OutcomeNoNewTickets
	}

	return t.notify(ctx, fresh)
}

// notify attempts the primary channel, then the webhook fallback. Both
// failing is terminal for this invocation; there is no tertiary channel.
func (t *TicketCheck) notify(ctx context.Context, fresh []model.Ticket) model.Outcome {
	body := fmt.Sprintf("%d 🆕 TICKETS", len(fresh))

	sid, err := t.sms.SendMessage(ctx, body)
	if err == nil {
		t.logger.Info(ctx, "notification delivered", "channel", "sms", "sid", sid)
		return model.OutcomeDelivered
	}
	t.logger.Error(ctx, "failed to send sms, falling back to webhook", "error", err)

	if err := t.webhook.NotifyNewTickets(ctx, fresh); err != nil {
		t.logger.Error(ctx, "failed to send webhook notification", "error", err)
		t.logger.Error(ctx, "all notification channels failed, please check once")
		return model.OutcomeFailedAll
	}

	t.logger.Info(ctx, "notification delivered", "channel", "webhook")
	return model.OutcomeDeliveredFallback
}

// sendFailureAlert notifies the primary channel about a broken fetch.
// The webhook fallback is deliberately never used for this failure mode.
func (t *TicketCheck) sendFailureAlert(ctx context.Context) {
	if _, err := t.sms.SendMessage(ctx, fetchFailedBody); err != nil {
		t.logger.Error(ctx, "failed to send fetch-failure alert", "error", err)
	}
}

// newTickets filters out known IDs, preserving listing order and leaving
// both inputs untouched.
func newTickets(all []model.Ticket, known model.KnownIDSet) []model.Ticket {
	fresh := make([]model.Ticket, 0, len(all))
	for _, t := range all {
		if known.Contains(t.ID) {
			continue
		}
		fresh = append(fresh, t)
	}
	return fresh
}
