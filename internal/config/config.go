package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Twilio holds the credentials and numbers for the SMS channel.
type Twilio struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	ToNumber   string
}

// Config contains runtime configuration values.
type Config struct {
	TicketURL      string
	KnownTicketIDs []string
	Twilio         Twilio
	WebhookURL     string
	RequestTimeout time.Duration
	DryRun         bool
	Disabled       bool
}

const defaultTimeout = 60 * time.Second

// Load builds a Config from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		TicketURL:      getenvDefault("TICKET_URL", ""),
		KnownTicketIDs: splitIDs(getenvDefault("KNOWN_TICKET_IDS", "")),
		Twilio:         loadTwilio(),
		WebhookURL:     getenvDefault("WEBHOOK_URL", ""),
		RequestTimeout: parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		DryRun:         parseBoolDefault("DEBUG_MODE", false),
		Disabled:       parseBoolDefault("STOP_EXECUTION", false),
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadTwilio builds just the Twilio part, for tools that only send SMS.
func LoadTwilio() (*Twilio, error) {
	tw := loadTwilio()
	if err := tw.validate(); err != nil {
		return nil, err
	}
	return &tw, nil
}

func loadTwilio() Twilio {
	return Twilio{
		AccountSID: getenvDefault("TWILIO_ACCOUNT_SID", ""),
		AuthToken:  getenvDefault("TWILIO_AUTH_TOKEN", ""),
		FromNumber: getenvDefault("TWILIO_FROM_NUMBER", ""),
		ToNumber:   getenvDefault("TWILIO_TO_NUMBER", ""),
	}
}

func (c *Config) validate() error {
	if c.Disabled {
		// A paused schedule must not fail on missing settings.
		return nil
	}
	if c.TicketURL == "" {
		return fmt.Errorf("TICKET_URL is required")
	}
	if c.DryRun {
		return nil
	}
	return c.Twilio.validate()
}

func (t Twilio) validate() error {
	switch {
	case t.AccountSID == "":
		return fmt.Errorf("TWILIO_ACCOUNT_SID is required")
	case t.AuthToken == "":
		return fmt.Errorf("TWILIO_AUTH_TOKEN is required")
	case t.FromNumber == "":
		return fmt.Errorf("TWILIO_FROM_NUMBER is required")
	case t.ToNumber == "":
		return fmt.Errorf("TWILIO_TO_NUMBER is required")
	}
	return nil
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseBoolDefault(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(strings.ToLower(val)); err == nil {
			return b
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
