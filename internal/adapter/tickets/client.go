package tickets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/tidwall/gjson"

	"ticketwatch/internal/domain/model"
	"ticketwatch/internal/domain/ports"
)

const (
	maxFetchAttempts       = 3
	defaultInitialInterval = 2 * time.Second
	defaultMaxInterval     = 10 * time.Second
)

// StatusError reports an HTTP-success response whose body carried
// status:false. Retrying will not help.
type StatusError struct {
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return "listing response reported failure"
	}
	return fmt.Sprintf("listing response reported failure: %s", e.Message)
}

// Client fetches the ticket listing over HTTP, retrying transient
// failures with exponential backoff.
type Client struct {
	url        string
	httpClient *http.Client
	logger     ports.Logger

	initialInterval time.Duration
	maxInterval     time.Duration
	maxTries        uint
}

var _ ports.TicketSource = (*Client)(nil)

// New creates a new listing Client.
func New(url string, timeout time.Duration, logger ports.Logger) *Client {
	return &Client{
		url:             url,
		httpClient:      &http.Client{Timeout: timeout},
		logger:          logger,
		initialInterval: defaultInitialInterval,
		maxInterval:     defaultMaxInterval,
		maxTries:        maxFetchAttempts,
	}
}

// Fetch retrieves and parses the current ticket listing. Transport errors
// and non-2xx statuses are retried up to maxFetchAttempts total attempts;
// a malformed body or an explicit status:false fails immediately.
func (c *Client) Fetch(ctx context.Context) ([]model.Ticket, error) {
	attempt := 0
	operation := func() ([]byte, error) {
		attempt++
		return c.fetchOnce(ctx)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.initialInterval
	policy.RandomizationFactor = 0
	policy.Multiplier = 2
	policy.MaxInterval = c.maxInterval

	body, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(c.maxTries),
		backoff.WithNotify(func(err error, wait time.Duration) {
			c.logger.Warn(ctx, "listing request failed, retrying",
				"attempt", attempt, "max_attempts", c.maxTries, "wait", wait, "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}

	return parseListing(body)
}

func (c *Client) fetchOnce(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncateBody(body))
	}

	return body, nil
}

// parseListing extracts tickets from the listing body. idx and title may
// arrive as numbers or strings; both are stringified and trimmed.
func parseListing(body []byte) ([]model.Ticket, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("malformed listing response")
	}

	root := gjson.ParseBytes(body)
	if st := root.Get("status"); st.Exists() && !st.Bool() {
		return nil, &StatusError{Message: root.Get("message").String()}
	}

	var out []model.Ticket
	root.Get("children").ForEach(func(_, rec gjson.Result) bool {
		ticket := model.Ticket{
			ID:    strings.TrimSpace(rec.Get("idx").String()),
			Title: strings.TrimSpace(rec.Get("title").String()),
		}
		if raw, ok := rec.Value().(map[string]any); ok {
			ticket.Raw = raw
		}
		out = append(out, ticket)
		return true
	})

	return out, nil
}

func truncateBody(body []byte) string {
	const limit = 256
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit])
}
