package ports

import (
	"context"

	"ticketwatch/internal/domain/model"
)

// TicketSource fetches the current ticket listing from the remote
// endpoint. Implementations retry transient failures internally and
// return a permanent error once retries are exhausted or the response
// itself reports failure.
type TicketSource interface {
	Fetch(ctx context.Context) ([]model.Ticket, error)
}
