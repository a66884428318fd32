package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"ticketwatch/internal/di"
)

// The process always exits 0: a periodic check reports failures through
// logs and the notification channels, not through the exit code.
func main() {
	application, err := di.InitializeApp()
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application.Run(ctx)
}
