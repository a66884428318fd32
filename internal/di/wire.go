//go:build wireinject

package di

import (
	"log/slog"
	"os"

	"github.com/google/wire"

	"ticketwatch/internal/adapter/dryrun"
	"ticketwatch/internal/adapter/logging"
	"ticketwatch/internal/adapter/sms"
	"ticketwatch/internal/adapter/tickets"
	"ticketwatch/internal/adapter/webhook"
	"ticketwatch/internal/app"
	"ticketwatch/internal/config"
	"ticketwatch/internal/domain/model"
	"ticketwatch/internal/domain/ports"
	"ticketwatch/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideTicketSource,
		provideMessageSender,
		provideTicketNotifier,
		provideCheckConfig,
		usecase.NewTicketCheck,
		app.New,
	)
	return nil, nil
}

func provideSlogLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

func provideTicketSource(cfg *config.Config, logger ports.Logger) ports.TicketSource {
	return tickets.New(cfg.TicketURL, cfg.RequestTimeout, logger)
}

// provideMessageSender binds the dry-run sender when DEBUG_MODE is set,
// so the run keeps its control flow without touching Twilio.
func provideMessageSender(cfg *config.Config, logger ports.Logger) ports.MessageSender {
	if cfg.DryRun {
		return dryrun.NewSender(logger)
	}
	tw := cfg.Twilio
	return sms.NewTwilioSender(tw.AccountSID, tw.AuthToken, tw.FromNumber, tw.ToNumber, cfg.RequestTimeout, logger)
}

func provideTicketNotifier(cfg *config.Config, logger ports.Logger) ports.TicketNotifier {
	if cfg.DryRun {
		return dryrun.NewWebhook(logger)
	}
	return webhook.New(cfg.WebhookURL, cfg.RequestTimeout, logger)
}

func provideCheckConfig(cfg *config.Config) usecase.TicketCheckConfig {
	return usecase.TicketCheckConfig{
		KnownIDs: model.NewKnownIDSet(cfg.KnownTicketIDs),
		Disabled: cfg.Disabled,
	}
}
