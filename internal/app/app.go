package app

import (
	"context"

	"ticketwatch/internal/domain/ports"
	"ticketwatch/internal/usecase"
)

// App runs exactly one ticket check. Periodic execution is the job of an
// external scheduler; the process stays single-shot so overlapping runs
// cannot happen inside it.
type App struct {
	check  *usecase.TicketCheck
	logger ports.Logger
}

// New constructs an App instance.
func New(check *usecase.TicketCheck, logger ports.Logger) *App {
	return &App{
		check:  check,
		logger: logger,
	}
}

// Run performs the single check cycle and logs the outcome. It never
// returns an error; every failure is already handled inside the check.
func (a *App) Run(ctx context.Context) {
	outcome := a.check.Run(ctx)
	a.logger.Info(ctx, "check finished", "outcome", outcome)
}
