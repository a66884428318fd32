package sms

import (
	"context"
	"fmt"
	"time"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"ticketwatch/internal/domain/ports"
)

// TwilioSender sends SMS through the Twilio Messages API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
	to     string
	logger ports.Logger
}

var _ ports.MessageSender = (*TwilioSender)(nil)

// NewTwilioSender creates a TwilioSender bound to a fixed from/to pair.
func NewTwilioSender(accountSID, authToken, from, to string, timeout time.Duration, logger ports.Logger) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	client.Client.SetTimeout(timeout)

	return &TwilioSender{
		client: client,
		from:   from,
		to:     to,
		logger: logger,
	}
}

// SendMessage sends one SMS and returns the Twilio message SID.
// The Twilio client carries its own request timeout; ctx is accepted for
// interface symmetry with the other channels.
func (s *TwilioSender) SendMessage(ctx context.Context, body string) (string, error) {
	s.logger.Info(ctx, "sending sms", "to", s.to)

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(s.to)
	params.SetFrom(s.from)
	params.SetBody(body)

	msg, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("create message: %w", err)
	}
	if msg.Sid == nil {
		return "", fmt.Errorf("twilio response missing sid")
	}

	s.logger.Info(ctx, "sms sent", "sid", *msg.Sid)
	return *msg.Sid, nil
}
