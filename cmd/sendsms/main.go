// Command sendsms sends one fixed SMS through the configured Twilio
// account. It exists to smoke-test the SMS channel end to end.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ticketwatch/internal/adapter/logging"
	"ticketwatch/internal/adapter/sms"
	"ticketwatch/internal/config"
)

const (
	body           = "Hello from Ticketwatch!"
	requestTimeout = 60 * time.Second
)

func main() {
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.New(slogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tw, err := config.LoadTwilio()
	if err != nil {
		logger.Error(ctx, "failed to load twilio configuration", "error", err)
		return
	}

	sender := sms.NewTwilioSender(tw.AccountSID, tw.AuthToken, tw.FromNumber, tw.ToNumber, requestTimeout, logger)
	sid, err := sender.SendMessage(ctx, body)
	if err != nil {
		logger.Error(ctx, "failed to send message", "error", err)
		return
	}

	logger.Info(ctx, "message sent", "sid", sid)
}
