package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ticketwatch/internal/domain/model"
	"ticketwatch/internal/domain/ports"
)

// Notifier posts new-ticket alerts to a chat webhook. The payload shape
// follows the URL host: Discord and Slack get their native formats,
// everything else a generic {message, tickets} body.
type Notifier struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.TicketNotifier = (*Notifier)(nil)

// New creates a new webhook Notifier.
func New(webhookURL string, timeout time.Duration, logger ports.Logger) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// NotifyNewTickets posts the full new-ticket list to the webhook.
func (n *Notifier) NotifyNewTickets(ctx context.Context, tickets []model.Ticket) error {
	if n.webhookURL == "" {
		return fmt.Errorf("webhook URL is empty")
	}

	body, err := json.Marshal(payloadFor(n.webhookURL, tickets))
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	n.logger.Info(ctx, "webhook notification sent", "tickets", len(tickets))
	return nil
}

func payloadFor(url string, tickets []model.Ticket) any {
	message := buildMessage(tickets)

	switch {
	case strings.Contains(url, "discord.com"):
		return map[string]any{
			"content":  message,
			"username": "Ticket Monitor",
		}
	case strings.Contains(url, "slack.com"):
		return map[string]any{
			"text": message,
		}
	default:
		return map[string]any{
			"message": message,
			"tickets": rawRecords(tickets),
		}
	}
}

func buildMessage(tickets []model.Ticket) string {
	lines := make([]string, 0, len(tickets)+1)
	lines = append(lines, "🎫 **New Match Tickets Available!**\n")
	for _, t := range tickets {
		title := t.Title
		if title == "" {
			title = "Unknown"
		}
		id := t.ID
		if id == "" {
			id = "Unknown"
		}
		lines = append(lines, fmt.Sprintf("• %s (ID: %s)", title, id))
	}
	return strings.Join(lines, "\n")
}

// rawRecords returns the untouched listing records so generic receivers
// see the same fields the endpoint served.
func rawRecords(tickets []model.Ticket) []map[string]any {
	out := make([]map[string]any, 0, len(tickets))
	for _, t := range tickets {
		if t.Raw != nil {
			out = append(out, t.Raw)
			continue
		}
		out = append(out, map[string]any{"idx": t.ID, "title": t.Title})
	}
	return out
}
